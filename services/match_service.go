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

type MatchService struct {
	DB *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{DB: db}
}

// CreateMatch reports a match. The caller is always player1 and the result is
// relative to them. While a PENDING or APPROVED match for the same pair
// exists in the same tournament context, re-submission is refused with the
// existing match id; the PairKey unique index closes the race window.
func (s *MatchService) CreateMatch(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	var req struct {
		Player2ID     string  `json:"player2_id"`
		Result        string  `json:"result"`
		Player1Leader string  `json:"player1_leader"`
		Player2Leader string  `json:"player2_leader"`
		TournamentID  *string `json:"tournament_id"`
		Notes         string  `json:"notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.Player2ID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "you must select an opponent"})
	}
	if req.Player2ID == userID {
		return c.Status(400).JSON(fiber.Map{"error": "you cannot report a match against yourself"})
	}
	result := models.MatchResult(req.Result)
	if result != models.ResultWin && result != models.ResultLoss {
		return c.Status(400).JSON(fiber.Map{"error": "result must be WIN or LOSS"})
	}
	if req.Player1Leader == "" || req.Player2Leader == "" {
		return c.Status(400).JSON(fiber.Map{"error": "both leaders are required"})
	}

	var opponent models.User
	if err := s.DB.First(&opponent, "id = ?", req.Player2ID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "opponent not found"})
	}

	if req.TournamentID != nil && *req.TournamentID == "" {
		req.TournamentID = nil
	}

	if req.TournamentID != nil {
		var tournament models.Tournament
		if err := s.DB.First(&tournament, "id = ?", *req.TournamentID).Error; err != nil {
			return c.Status(404).JSON(fiber.Map{"error": "tournament not found"})
		}
		applyDerivedStatus(s.DB, &tournament)
		if tournament.Status != models.TournamentOngoing {
			return c.Status(400).JSON(fiber.Map{"error": "tournament is not ongoing"})
		}

		var enrolled int64
		s.DB.Model(&models.TournamentParticipant{}).
			Where("tournament_id = ? AND user_id = ? AND status = ?",
				tournament.ID, userID, models.ParticipantApproved).
			Count(&enrolled)
		if enrolled == 0 {
			return c.Status(400).JSON(fiber.Map{"error": "you are not enrolled in this tournament"})
		}
	}

	pairKey := models.MatchPairKey(userID, req.Player2ID, req.TournamentID)

	var existing models.Match
	err := s.DB.
		Where("pair_key = ? AND status IN ?", pairKey,
			[]models.MatchStatus{models.MatchPending, models.MatchApproved}).
		First(&existing).Error
	if err == nil {
		return c.Status(409).JSON(fiber.Map{
			"error":    "a pending or approved match against this player already exists in this context",
			"match_id": existing.ID,
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[MATCH] duplicate check failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to create match"})
	}

	match := models.Match{
		Player1ID:     userID,
		Player2ID:     req.Player2ID,
		Player1Leader: utils.NormalizeLeaderName(req.Player1Leader),
		Player2Leader: utils.NormalizeLeaderName(req.Player2Leader),
		Result:        result,
		TournamentID:  req.TournamentID,
		Notes:         req.Notes,
		Status:        models.MatchPending,
		PairKey:       &pairKey,
	}
	if err := s.DB.Create(&match).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost the race: report the winner's match id
			s.DB.Where("pair_key = ?", pairKey).First(&existing)
			return c.Status(409).JSON(fiber.Map{
				"error":    "a pending or approved match against this player already exists in this context",
				"match_id": existing.ID,
			})
		}
		log.Printf("[MATCH] create failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to create match"})
	}

	s.DB.Preload("Player1").Preload("Player2").Preload("Tournament").
		First(&match, "id = ?", match.ID)
	return c.Status(201).JSON(&match)
}

// GetMyMatches lists the caller's matches, newest first.
func (s *MatchService) GetMyMatches(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	db := s.DB.
		Preload("Player1").Preload("Player2").Preload("Tournament").
		Where("player1_id = ? OR player2_id = ?", userID, userID)
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var matches []models.Match
	if err := db.Order("created_at DESC").Limit(parseLimit(c, 100, 500)).
		Find(&matches).Error; err != nil {
		log.Printf("[MATCH] list failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch matches"})
	}
	return c.JSON(matches)
}

// GetMatch returns one match. Only the involved players, judges and admins
// may see it; everyone else gets a 404 so match existence does not leak.
func (s *MatchService) GetMatch(c *fiber.Ctx) error {
	var match models.Match
	err := s.DB.
		Preload("Player1").Preload("Player2").
		Preload("Tournament").Preload("ApprovedBy").
		First(&match, "id = ?", c.Params("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "match not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch match"})
	}

	userID := middleware.CurrentUserID(c)
	role := middleware.CurrentUserRole(c)
	if userID != match.Player1ID && userID != match.Player2ID && !role.CanApproveMatches() {
		return c.Status(404).JSON(fiber.Map{"error": "match not found"})
	}
	return c.JSON(&match)
}

// GetPendingMatches lists every match awaiting review (judge/admin view).
func (s *MatchService) GetPendingMatches(c *fiber.Ctx) error {
	var matches []models.Match
	err := s.DB.
		Preload("Player1").Preload("Player2").Preload("Tournament").
		Where("status = ?", models.MatchPending).
		Order("created_at ASC").
		Find(&matches).Error
	if err != nil {
		log.Printf("[MATCH] pending list failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch pending matches"})
	}
	return c.JSON(matches)
}

// ReviewMatch transitions a PENDING match to APPROVED or REJECTED and records
// the approver. Both outcomes are terminal; rejection clears the pair key so
// the players can submit a fresh match.
func (s *MatchService) ReviewMatch(c *fiber.Ctx) error {
	var req struct {
		Status models.MatchStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Status != models.MatchApproved && req.Status != models.MatchRejected {
		return c.Status(400).JSON(fiber.Map{"error": "status must be APPROVED or REJECTED"})
	}

	var match models.Match
	if err := s.DB.First(&match, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "match not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch match"})
	}

	if match.Reviewed() {
		return c.Status(400).JSON(fiber.Map{"error": "match has already been reviewed"})
	}

	reviewerID := middleware.CurrentUserID(c)
	updates := map[string]interface{}{
		"status":         req.Status,
		"approved_by_id": reviewerID,
	}
	if req.Status == models.MatchRejected {
		updates["pair_key"] = nil
	}

	// Guard the PENDING precondition in the update itself so two concurrent
	// reviews cannot both win.
	res := s.DB.Model(&models.Match{}).
		Where("id = ? AND status = ?", match.ID, models.MatchPending).
		Updates(updates)
	if res.Error != nil {
		log.Printf("[MATCH] review failed: %v", res.Error)
		return c.Status(500).JSON(fiber.Map{"error": "failed to review match"})
	}
	if res.RowsAffected == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "match has already been reviewed"})
	}

	s.DB.Preload("Player1").Preload("Player2").
		Preload("Tournament").Preload("ApprovedBy").
		First(&match, "id = ?", match.ID)
	return c.JSON(&match)
}
