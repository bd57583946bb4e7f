package cron_feature

import (
	"context"
	"fmt"
	"time"

	common_models "go-portal/internal/common/models"
	"go-portal/internal/config"
	"go-portal/internal/database"
	"go-portal/internal/features/audit"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// RetentionService runs the scheduled housekeeping jobs: purging audit logs
// and application logs past the configured age.
type RetentionService interface {
	InitializeScheduler(ctx context.Context) error
	StopScheduler() error
	RunRetention(ctx context.Context) error
}

type RetentionServiceImpl struct {
	Config       *config.Config
	DB           *database.MongodbDB
	AuditService audit.AuditService
	Logger       *zap.Logger

	scheduler *cron.Cron
}

func NewRetentionService(cfg *config.Config, db *database.MongodbDB, auditService audit.AuditService, logger *zap.Logger) RetentionService {
	return &RetentionServiceImpl{
		Config:       cfg,
		DB:           db,
		AuditService: auditService,
		Logger:       logger,
	}
}

func (s *RetentionServiceImpl) InitializeScheduler(ctx context.Context) error {
	if _, err := cron.ParseStandard(s.Config.RetentionSchedule); err != nil {
		return fmt.Errorf("invalid retention schedule: %w", err)
	}

	s.scheduler = cron.New()
	_, err := s.scheduler.AddFunc(s.Config.RetentionSchedule, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := s.RunRetention(jobCtx); err != nil {
			s.Logger.Error("retention job failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.Start()
	s.Logger.Info("retention scheduler started", zap.String("schedule", s.Config.RetentionSchedule))
	return nil
}

func (s *RetentionServiceImpl) StopScheduler() error {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
	return nil
}

func (s *RetentionServiceImpl) RunRetention(ctx context.Context) error {
	cutoff := time.Now().AddDate(0, 0, -s.Config.AuditRetentionDay)

	purged, err := s.AuditService.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	// Application logs share the same retention window
	result, err := s.DB.DB.Collection("logs").DeleteMany(ctx, bson.M{"created_on_utc": bson.M{"$lt": cutoff}})
	if err != nil {
		return err
	}

	s.Logger.Info("retention job completed",
		zap.Int64("audit_logs_purged", purged),
		zap.Int64("app_logs_purged", result.DeletedCount),
	)

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionCron, "retention", "", map[string]common_models.Change{
		"audit_logs_purged": {New: purged},
		"app_logs_purged":   {New: result.DeletedCount},
	})
	return nil
}
