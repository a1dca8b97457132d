package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doctorsportal/doctors-portal-api/internal/models"
	"github.com/doctorsportal/doctors-portal-api/internal/utils"
)

// GetUsers lists every stored user.
func (h *Handler) GetUsers(c *gin.Context) {
	ctx, cancel := dbCtx(c)
	defer cancel()

	cursor, err := h.DB.Collection("users").Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to load users"})
		return
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to decode users"})
		return
	}
	if users == nil {
		users = make([]models.User, 0)
	}

	c.JSON(http.StatusOK, users)
}

// CheckAdmin reports whether an email holds the admin role. A user
// that does not exist is reported as not admin, never as an error.
func (h *Handler) CheckAdmin(c *gin.Context) {
	ctx, cancel := dbCtx(c)
	defer cancel()

	isAdmin, err := h.RoleSvc.IsAdmin(ctx, c.Param("email"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to check role"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// UpsertUser stores a user profile under the path email and mints a
// fresh identity token for it. The update is a partial $set, so a
// patch that omits role never demotes an admin.
func (h *Handler) UpsertUser(c *gin.Context) {
	email := c.Param("email")

	var profile map[string]interface{}
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user body"})
		return
	}
	delete(profile, "_id")
	delete(profile, "id")
	profile["email"] = email

	ctx, cancel := dbCtx(c)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	result, err := h.DB.Collection("users").UpdateOne(ctx,
		bson.M{"email": email}, bson.M{"$set": profile}, opts)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to store user"})
		return
	}

	token, err := utils.GenerateToken(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "token": token})
}

// PutUserDispatch serves both PUT /user/:email (open profile upsert)
// and PUT /user/admin/:email (admin-gated promotion). Gin's router
// cannot hold a param and a static segment as siblings in one method
// tree, so both routes share a catch-all and split here; the admin
// chain runs only on the promotion branch.
func (h *Handler) PutUserDispatch(adminChain ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		rest := strings.TrimPrefix(c.Param("email"), "/")
		if target, isPromotion := strings.CutPrefix(rest, "admin/"); isPromotion {
			c.Params = gin.Params{{Key: "email", Value: target}}
			for _, mw := range adminChain {
				mw(c)
				if c.IsAborted() {
					return
				}
			}
			h.PromoteAdmin(c)
			return
		}
		c.Params = gin.Params{{Key: "email", Value: rest}}
		h.UpsertUser(c)
	}
}

// PromoteAdmin sets role=admin on the given email. There is no
// demotion route.
func (h *Handler) PromoteAdmin(c *gin.Context) {
	email := c.Param("email")

	ctx, cancel := dbCtx(c)
	defer cancel()

	result, err := h.DB.Collection("users").UpdateOne(ctx,
		bson.M{"email": email}, bson.M{"$set": bson.M{"role": "admin"}})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to update role"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User promoted to admin"})
}
