package services

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"optcg-tracker/middleware"
	"optcg-tracker/models"
	"optcg-tracker/utils"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// EnsureAdminUser creates (or promotes) the bootstrap admin from
// ADMIN_EMAIL/ADMIN_PASSWORD so a fresh deployment is never admin-less.
func (s *UserService) EnsureAdminUser() error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		var count int64
		s.DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
		if count == 0 {
			log.Println("⚠️  No admin user exists and ADMIN_EMAIL/ADMIN_PASSWORD are not set")
		}
		return nil
	}

	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			Name:     "Admin",
			Email:    email,
			Password: password,
			Role:     models.RoleAdmin,
		}
		if err := s.DB.Create(&user).Error; err != nil {
			return err
		}
		log.Printf("✅ Bootstrap admin created: %s", email)
		return nil
	}
	if err != nil {
		return err
	}
	if user.Role != models.RoleAdmin {
		if err := s.DB.Model(&user).Update("role", models.RoleAdmin).Error; err != nil {
			return err
		}
		log.Printf("✅ Bootstrap admin promoted: %s", email)
	}
	return nil
}

// ListUsers returns all users for the admin panel.
func (s *UserService) ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := s.DB.Order("created_at ASC").Find(&users).Error; err != nil {
		log.Printf("[USERS] list failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch users"})
	}
	return c.JSON(users)
}

// SearchUsers finds opponents by name or email for the match form.
func (s *UserService) SearchUsers(c *fiber.Ctx) error {
	query := c.Query("q", "")
	limitStr := c.Query("limit", "50")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > 100 {
		limit = 50
	}

	db := s.DB.Model(&models.User{}).Limit(limit)
	if query != "" {
		searchTerm := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", searchTerm, searchTerm)
	}

	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "search failed"})
	}

	type UserSummary struct {
		ID              string  `json:"id"`
		Name            string  `json:"name"`
		PreferredLeader string  `json:"preferred_leader,omitempty"`
		AvatarURL       *string `json:"avatar_url,omitempty"`
	}
	res := make([]UserSummary, len(users))
	for i, u := range users {
		res[i] = UserSummary{
			ID:              u.ID,
			Name:            u.Name,
			PreferredLeader: u.PreferredLeader,
			AvatarURL:       u.AvatarURL,
		}
	}
	return c.JSON(res)
}

// UpdateUserRole changes a user's role. An admin's role can never be changed
// through this endpoint, which also protects the last admin from demotion.
func (s *UserService) UpdateUserRole(c *fiber.Ctx) error {
	userID := c.Params("id")

	var req struct {
		Role models.Role `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if !models.ValidRole(req.Role) {
		return c.Status(400).JSON(fiber.Map{"error": "invalid role"})
	}

	var user models.User
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "user not found"})
	}

	if user.Role == models.RoleAdmin {
		return c.Status(403).JSON(fiber.Map{"error": "cannot modify an administrator's role"})
	}

	if err := s.DB.Model(&user).Update("role", req.Role).Error; err != nil {
		log.Printf("[USERS] role update failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to update role"})
	}
	return c.JSON(user)
}

// ResetUserPassword sets a new password for a user (admin action).
func (s *UserService) ResetUserPassword(c *fiber.Ctx) error {
	userID := c.Params("id")

	var req struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if msg := utils.ValidatePassword(req.Password); msg != "" {
		return c.Status(400).JSON(fiber.Map{"error": msg})
	}

	var user models.User
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "user not found"})
	}

	hashed, err := models.HashPassword(req.Password)
	if err != nil {
		log.Printf("[USERS] password hash failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to update password"})
	}
	if err := s.DB.Model(&user).Update("password", hashed).Error; err != nil {
		log.Printf("[USERS] password reset failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to update password"})
	}
	return c.JSON(fiber.Map{"message": "password updated successfully"})
}

// IsLastAdmin reports whether removing a user with the given role would leave
// the system without any administrator.
func IsLastAdmin(role models.Role, adminCount int64) bool {
	return role == models.RoleAdmin && adminCount <= 1
}

// DeleteUser removes a user. Deleting the last remaining admin is refused.
func (s *UserService) DeleteUser(c *fiber.Ctx) error {
	userID := c.Params("id")

	var user models.User
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "user not found"})
	}

	if user.Role == models.RoleAdmin {
		var adminCount int64
		if err := s.DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount).Error; err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "failed to check admin count"})
		}
		if IsLastAdmin(user.Role, adminCount) {
			return c.Status(403).JSON(fiber.Map{"error": "cannot delete the last administrator"})
		}
	}

	if err := s.DB.Delete(&user).Error; err != nil {
		log.Printf("[USERS] delete failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to delete user"})
	}
	return c.JSON(fiber.Map{"message": "user deleted successfully"})
}

// MyStats aggregates the caller's approved matches into overall counters.
func (s *UserService) MyStats(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	var matches []models.Match
	if err := s.DB.
		Where("status = ? AND (player1_id = ? OR player2_id = ?)",
			models.MatchApproved, userID, userID).
		Find(&matches).Error; err != nil {
		log.Printf("[STATS] fetch failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch stats"})
	}

	stats := PlayerRecord(userID, matches)
	return c.JSON(fiber.Map{
		"matches":  stats.Matches,
		"wins":     stats.Wins,
		"losses":   stats.Losses,
		"win_rate": stats.WinRate,
	})
}

// UpdateAvatar uploads a new profile picture to object storage.
func (s *UserService) UpdateAvatar(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	avatar, err := c.FormFile("avatar")
	if err != nil || avatar.Size == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "avatar file is required"})
	}

	ext := filepath.Ext(avatar.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	key := "avatars/" + uuid.NewString() + ext
	url, err := utils.UploadFile(avatar, key)
	if err != nil {
		log.Printf("[AVATAR] upload failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to upload avatar"})
	}

	if err := s.DB.Model(&models.User{}).Where("id = ?", userID).
		Update("avatar_url", url).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to save avatar"})
	}
	return c.JSON(fiber.Map{"avatar_url": url})
}
