package handlers

import (
	"net/http"

	"wedding-admin/auth"
	"wedding-admin/db"
	"wedding-admin/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type UserLoginRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type UserSaveRequest struct {
	ID       uint64 `form:"id"`
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password"`
	Role     string `form:"role"`
}

type UserIDRequest struct {
	ID uint64 `form:"id" binding:"required"`
}

type UserInfo struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func UserLogin(c *gin.Context) {
	postReq := UserLoginRequest{}
	err := c.ShouldBindWith(&postReq, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, success := models.UserLogin(postReq.Email, postReq.Password)
	if !success {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	session := auth.LoadSession(c)
	session.LoginUser(user.ID)
	c.JSON(http.StatusOK, gin.H{"error": "", "name": user.Name, "role": user.Role})
}

func UserLogout(c *gin.Context, user *models.User) {
	auth.LoadSession(c).LogoutUser()
	c.JSON(http.StatusOK, OKResponse)
}

// UserSave creates or updates an admin account. SUPER_ADMIN only.
func UserSave(c *gin.Context, user *models.User) {
	r := UserSaveRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	role := models.Role(r.Role)
	if role != models.RoleSuperAdmin {
		role = models.RoleAdmin
	}
	if r.ID == 0 {
		if r.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "password required"})
			return
		}
		created, err := models.UserCreate(r.Name, r.Email, r.Password, role)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, UserInfo{ID: created.ID, Name: created.Name, Email: created.Email, Role: string(created.Role)})
		return
	}
	existing := models.User{}
	if err := db.Instance.First(&existing, r.ID).Error; err != nil {
		abortWithError(c, err)
		return
	}
	existing.Name = r.Name
	existing.Email = r.Email
	existing.Role = role
	if r.Password != "" {
		existing.SetPassword(r.Password)
	}
	if err := db.Instance.Save(&existing).Error; err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, UserInfo{ID: existing.ID, Name: existing.Name, Email: existing.Email, Role: string(existing.Role)})
}

func UserDelete(c *gin.Context, user *models.User) {
	r := UserIDRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if r.ID == user.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot delete own account"})
		return
	}
	if err := db.Instance.Delete(&models.User{}, "id = ?", r.ID).Error; err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

func UserList(c *gin.Context, user *models.User) {
	var users []models.User
	if err := db.Instance.Order("created_at DESC").Find(&users).Error; err != nil {
		abortWithError(c, err)
		return
	}
	result := make([]UserInfo, 0, len(users))
	for _, u := range users {
		result = append(result, UserInfo{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role)})
	}
	c.JSON(http.StatusOK, result)
}
