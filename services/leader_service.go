package services

import (
	"errors"
	"log"
	"path/filepath"
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"optcg-tracker/models"
	"optcg-tracker/utils"
)

type LeaderService struct {
	DB *gorm.DB
}

func NewLeaderService(db *gorm.DB) *LeaderService {
	return &LeaderService{DB: db}
}

// GetLeaders returns the leader catalog, alphabetically.
func (s *LeaderService) GetLeaders(c *fiber.Ctx) error {
	var leaders []models.Leader
	if err := s.DB.Order("name ASC").Find(&leaders).Error; err != nil {
		log.Printf("[LEADERS] list failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch leaders"})
	}
	return c.JSON(leaders)
}

// CreateLeader adds a catalog entry (admin only). Accepts multipart form data
// so leader art can be uploaded in the same request.
func (s *LeaderService) CreateLeader(c *fiber.Ctx) error {
	name := c.FormValue("name")
	if name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name is required"})
	}
	name = utils.NormalizeLeaderName(name)

	leader := models.Leader{
		Name:    name,
		Slug:    slug.Make(name),
		Color:   c.FormValue("color"),
		SetCode: c.FormValue("set_code"),
	}

	if art, err := c.FormFile("image"); err == nil && art.Size > 0 {
		ext := filepath.Ext(art.Filename)
		if ext == "" {
			ext = ".jpg"
		}
		key := "leaders/" + uuid.NewString() + ext
		url, err := utils.UploadFile(art, key)
		if err != nil {
			log.Printf("[LEADERS] art upload failed: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "failed to upload leader art"})
		}
		leader.ImageURL = url
	}

	if err := s.DB.Create(&leader).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(409).JSON(fiber.Map{"error": "leader already exists"})
		}
		log.Printf("[LEADERS] create failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to create leader"})
	}
	return c.Status(201).JSON(&leader)
}

// DeleteLeader removes a catalog entry (admin only). Matches keep their
// declared leader names; only the catalog row goes away.
func (s *LeaderService) DeleteLeader(c *fiber.Ctx) error {
	res := s.DB.Delete(&models.Leader{}, "id = ?", c.Params("id"))
	if res.Error != nil {
		log.Printf("[LEADERS] delete failed: %v", res.Error)
		return c.Status(500).JSON(fiber.Map{"error": "failed to delete leader"})
	}
	if res.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "leader not found"})
	}
	return c.JSON(fiber.Map{"message": "leader deleted successfully"})
}

// LeaderUsage is one line of the leader usage statistics.
type LeaderUsage struct {
	Leader  string  `json:"leader"`
	Matches int     `json:"matches"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"win_rate"`
}

// GetLeaderStats aggregates approved matches by declared leader. Each match
// counts once per side; a side's win follows the player1-relative result.
func (s *LeaderService) GetLeaderStats(c *fiber.Ctx) error {
	var matches []models.Match
	if err := s.DB.Where("status = ?", models.MatchApproved).
		Find(&matches).Error; err != nil {
		log.Printf("[LEADERS] stats fetch failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch leader stats"})
	}

	usage := map[string]*LeaderUsage{}
	bump := func(leader string, won bool) {
		if leader == "" {
			return
		}
		u, ok := usage[leader]
		if !ok {
			u = &LeaderUsage{Leader: leader}
			usage[leader] = u
		}
		u.Matches++
		if won {
			u.Wins++
		}
	}
	for _, m := range matches {
		bump(m.Player1Leader, m.Result == models.ResultWin)
		bump(m.Player2Leader, m.Result == models.ResultLoss)
	}

	list := make([]LeaderUsage, 0, len(usage))
	for _, u := range usage {
		u.WinRate = float64(u.Wins) / float64(u.Matches) * 100
		list = append(list, *u)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Matches != list[j].Matches {
			return list[i].Matches > list[j].Matches
		}
		return list[i].Leader < list[j].Leader
	})
	return c.JSON(list)
}
