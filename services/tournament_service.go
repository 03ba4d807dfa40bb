package services

import (
	"errors"
	"log"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"optcg-tracker/middleware"
	"optcg-tracker/models"
	"optcg-tracker/utils"
)

type TournamentService struct {
	DB *gorm.DB
}

func NewTournamentService(db *gorm.DB) *TournamentService {
	return &TournamentService{DB: db}
}

func (s *TournamentService) CreateTournament(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		StartDate   string `json:"start_date"`
		EndDate     string `json:"end_date"`
		Duration    string `json:"duration"`
		MaxPlayers  *int   `json:"max_players"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.Name == "" || req.StartDate == "" || req.EndDate == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name, start_date and end_date are required"})
	}

	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid start_date (use RFC3339)"})
	}
	endDate, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid end_date (use RFC3339)"})
	}
	if !endDate.After(startDate) {
		return c.Status(400).JSON(fiber.Map{"error": "end_date must be after start_date"})
	}

	duration := models.TournamentDuration(req.Duration)
	if !models.ValidDuration(duration) {
		return c.Status(400).JSON(fiber.Map{"error": "duration must be ONE_DAY, ONE_WEEK or ONE_MONTH"})
	}

	if req.MaxPlayers != nil && *req.MaxPlayers < 2 {
		return c.Status(400).JSON(fiber.Map{"error": "max_players must be at least 2"})
	}

	tournament := &models.Tournament{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Duration:    duration,
		MaxPlayers:  req.MaxPlayers,
		Status:      DeriveTournamentStatus(time.Now(), startDate, endDate),
		CreatedByID: middleware.CurrentUserID(c),
	}

	if err := s.DB.Create(tournament).Error; err != nil {
		log.Printf("[TOURNAMENT] create failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to create tournament"})
	}

	return c.Status(201).JSON(tournament)
}

func (s *TournamentService) GetAllTournaments(c *fiber.Ctx) error {
	db := s.DB.Preload("CreatedBy")

	// Optional ?status= filter
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var tournaments []models.Tournament
	if err := db.Order("start_date DESC").Find(&tournaments).Error; err != nil {
		log.Printf("[TOURNAMENT] list failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch tournaments"})
	}

	for i := range tournaments {
		applyDerivedStatus(s.DB, &tournaments[i])
		s.DB.Model(&models.TournamentParticipant{}).
			Where("tournament_id = ?", tournaments[i].ID).
			Count(&tournaments[i].ParticipantCount)
		s.DB.Model(&models.Match{}).
			Where("tournament_id = ?", tournaments[i].ID).
			Count(&tournaments[i].MatchCount)
	}

	return c.JSON(tournaments)
}

func (s *TournamentService) GetTournamentByID(c *fiber.Ctx) error {
	var tournament models.Tournament
	err := s.DB.
		Preload("CreatedBy").
		Preload("Participants.User").
		Preload("Matches", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Matches.Player1").
		Preload("Matches.Player2").
		First(&tournament, "id = ?", c.Params("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "tournament not found"})
		}
		log.Printf("[TOURNAMENT] fetch failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch tournament"})
	}

	applyDerivedStatus(s.DB, &tournament)
	tournament.ParticipantCount = int64(len(tournament.Participants))
	tournament.MatchCount = int64(len(tournament.Matches))

	return c.JSON(&tournament)
}

func (s *TournamentService) UpdateTournament(c *fiber.Ctx) error {
	var tournament models.Tournament
	if err := s.DB.First(&tournament, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "tournament not found"})
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		StartDate   *string `json:"start_date"`
		EndDate     *string `json:"end_date"`
		Duration    *string `json:"duration"`
		MaxPlayers  *int    `json:"max_players"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		if *req.Name == "" {
			return c.Status(400).JSON(fiber.Map{"error": "name cannot be empty"})
		}
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.StartDate != nil {
		startDate, err := time.Parse(time.RFC3339, *req.StartDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid start_date (use RFC3339)"})
		}
		updates["start_date"] = startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse(time.RFC3339, *req.EndDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid end_date (use RFC3339)"})
		}
		updates["end_date"] = endDate
	}
	if req.Duration != nil {
		duration := models.TournamentDuration(*req.Duration)
		if !models.ValidDuration(duration) {
			return c.Status(400).JSON(fiber.Map{"error": "duration must be ONE_DAY, ONE_WEEK or ONE_MONTH"})
		}
		updates["duration"] = duration
	}
	if req.MaxPlayers != nil {
		if *req.MaxPlayers < 2 {
			return c.Status(400).JSON(fiber.Map{"error": "max_players must be at least 2"})
		}
		updates["max_players"] = *req.MaxPlayers
	}

	if len(updates) == 0 {
		return c.JSON(&tournament)
	}

	if err := s.DB.Model(&tournament).Updates(updates).Error; err != nil {
		log.Printf("[TOURNAMENT] update failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to update tournament"})
	}

	applyDerivedStatus(s.DB, &tournament)
	return c.JSON(&tournament)
}

func (s *TournamentService) DeleteTournament(c *fiber.Ctx) error {
	var tournament models.Tournament
	if err := s.DB.First(&tournament, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "tournament not found"})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tournament_id = ?", tournament.ID).
			Delete(&models.TournamentParticipant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&tournament).Error
	})
	if err != nil {
		log.Printf("[TOURNAMENT] delete failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to delete tournament"})
	}
	return c.JSON(fiber.Map{"message": "tournament deleted successfully"})
}

// JoinTournament enrolls the caller. The composite unique index on
// (tournament_id, user_id) rejects double enrollment, and the capacity check
// enforces max_players.
func (s *TournamentService) JoinTournament(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	var tournament models.Tournament
	if err := s.DB.First(&tournament, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "tournament not found"})
	}

	applyDerivedStatus(s.DB, &tournament)
	if tournament.Status == models.TournamentCompleted {
		return c.Status(400).JSON(fiber.Map{"error": "tournament has already finished"})
	}

	if tournament.MaxPlayers != nil {
		var count int64
		s.DB.Model(&models.TournamentParticipant{}).
			Where("tournament_id = ?", tournament.ID).Count(&count)
		if count >= int64(*tournament.MaxPlayers) {
			return c.Status(400).JSON(fiber.Map{"error": "tournament is full"})
		}
	}

	participation := models.TournamentParticipant{
		TournamentID: tournament.ID,
		UserID:       userID,
		Status:       models.ParticipantApproved,
	}
	if err := s.DB.Create(&participation).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(409).JSON(fiber.Map{"error": "you are already enrolled in this tournament"})
		}
		log.Printf("[TOURNAMENT] join failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to join tournament"})
	}

	s.DB.Preload("Tournament").First(&participation, "id = ?", participation.ID)
	return c.Status(201).JSON(&participation)
}

func (s *TournamentService) GetParticipants(c *fiber.Ctx) error {
	tournamentID := c.Params("id")

	var tournament models.Tournament
	if err := s.DB.First(&tournament, "id = ?", tournamentID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "tournament not found"})
	}

	var participants []models.TournamentParticipant
	if err := s.DB.Preload("User").
		Where("tournament_id = ?", tournamentID).
		Order("joined_at ASC").
		Find(&participants).Error; err != nil {
		log.Printf("[TOURNAMENT] participants fetch failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch participants"})
	}
	return c.JSON(participants)
}

// GetRanking computes the standings for one tournament from its approved
// matches.
func (s *TournamentService) GetRanking(c *fiber.Ctx) error {
	tournamentID := c.Params("id")

	var tournament models.Tournament
	if err := s.DB.First(&tournament, "id = ?", tournamentID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "tournament not found"})
	}
	applyDerivedStatus(s.DB, &tournament)

	rows, err := s.rankingRows(tournamentID)
	if err != nil {
		log.Printf("[RANKING] fetch failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to compute ranking"})
	}

	return c.JSON(fiber.Map{
		"tournament": fiber.Map{
			"id":     tournament.ID,
			"name":   tournament.Name,
			"status": tournament.Status,
		},
		"rankings": rows,
	})
}

// GetRankings lists standings for every ongoing and completed tournament.
func (s *TournamentService) GetRankings(c *fiber.Ctx) error {
	if err := ReconcileTournamentStatuses(s.DB); err != nil {
		log.Printf("[RANKING] reconcile failed: %v", err)
	}

	var tournaments []models.Tournament
	if err := s.DB.
		Where("status IN ?", []models.TournamentStatus{
			models.TournamentOngoing, models.TournamentCompleted,
		}).
		Order("status DESC, start_date DESC"). // ONGOING first
		Find(&tournaments).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch tournaments"})
	}

	type tournamentRanking struct {
		ID       string                  `json:"id"`
		Name     string                  `json:"name"`
		Status   models.TournamentStatus `json:"status"`
		Rankings []RankingRow            `json:"rankings"`
	}

	res := make([]tournamentRanking, 0, len(tournaments))
	for _, t := range tournaments {
		rows, err := s.rankingRows(t.ID)
		if err != nil {
			log.Printf("[RANKING] fetch failed for %s: %v", t.ID, err)
			return c.Status(500).JSON(fiber.Map{"error": "failed to compute rankings"})
		}
		res = append(res, tournamentRanking{
			ID:       t.ID,
			Name:     t.Name,
			Status:   t.Status,
			Rankings: rows,
		})
	}
	return c.JSON(res)
}

func (s *TournamentService) rankingRows(tournamentID string) ([]RankingRow, error) {
	var participants []models.User
	err := s.DB.
		Joins("JOIN tournament_participants tp ON tp.user_id = users.id").
		Where("tp.tournament_id = ?", tournamentID).
		Find(&participants).Error
	if err != nil {
		return nil, err
	}

	var matches []models.Match
	err = s.DB.
		Where("tournament_id = ? AND status = ?", tournamentID, models.MatchApproved).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}

	return ComputeRankings(participants, matches), nil
}

// UpdateStatuses forces a status reconciliation pass (on-demand variant of
// the scheduler job).
func (s *TournamentService) UpdateStatuses(c *fiber.Ctx) error {
	if err := ReconcileTournamentStatuses(s.DB); err != nil {
		log.Printf("[STATUS] reconcile failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to update statuses"})
	}
	return c.JSON(fiber.Map{"message": "tournament statuses updated"})
}

// UploadPoster stores a tournament poster in object storage.
func (s *TournamentService) UploadPoster(c *fiber.Ctx) error {
	var tournament models.Tournament
	if err := s.DB.First(&tournament, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "tournament not found"})
	}

	poster, err := c.FormFile("poster")
	if err != nil || poster.Size == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "poster file is required"})
	}

	ext := filepath.Ext(poster.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	key := "tournaments/posters/" + uuid.NewString() + ext
	url, err := utils.UploadFile(poster, key)
	if err != nil {
		log.Printf("[TOURNAMENT] poster upload failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to upload poster"})
	}

	if err := s.DB.Model(&tournament).Update("poster_url", url).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to save poster"})
	}
	return c.JSON(fiber.Map{"poster_url": url})
}

// parseLimit is shared by listing endpoints with a ?limit= parameter.
func parseLimit(c *fiber.Ctx, def, max int) int {
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(def)))
	if err != nil || limit <= 0 || limit > max {
		return def
	}
	return limit
}
