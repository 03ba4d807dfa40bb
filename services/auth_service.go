package services

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"optcg-tracker/middleware"
	"optcg-tracker/models"
	"optcg-tracker/utils"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

func (s *AuthService) Register(c *fiber.Ctx) error {
	var req struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		PreferredLeader string `json:"preferred_leader"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name, email and password are required"})
	}
	if msg := utils.ValidateEmail(req.Email); msg != "" {
		return c.Status(400).JSON(fiber.Map{"error": msg})
	}
	if msg := utils.ValidatePassword(req.Password); msg != "" {
		return c.Status(400).JSON(fiber.Map{"error": msg})
	}

	var existing models.User
	if err := s.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return c.Status(409).JSON(fiber.Map{"error": "email is already registered"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[REGISTER] lookup failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "internal error"})
	}

	user := models.User{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password, // hashed by BeforeSave
		Role:            models.RolePlayer,
		PreferredLeader: req.PreferredLeader,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(409).JSON(fiber.Map{"error": "email is already registered"})
		}
		log.Printf("[REGISTER] create failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to register user"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "user registered successfully",
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func (s *AuthService) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "email and password are required"})
	}

	// Same response for unknown email and wrong password.
	var user models.User
	if err := s.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "invalid credentials"})
	}
	if !user.CheckPassword(req.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "invalid credentials"})
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		log.Printf("[LOGIN] token generation failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to create session"})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func (s *AuthService) Me(c *fiber.Ctx) error {
	var user models.User
	if err := s.DB.First(&user, "id = ?", middleware.CurrentUserID(c)).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "user not found"})
	}
	return c.JSON(user)
}
