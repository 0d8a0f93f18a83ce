package store

import (
	"context"
	errs "errors"
	"time"

	"github.com/VinukaThejana/feedback/errors"
	"github.com/VinukaThejana/feedback/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Postgres keeps OTP records in the relational database, records survive restarts
type Postgres struct {
	DB *gorm.DB
}

// Upsert the OTP record, an existing record of the email is overwritten
func (p *Postgres) Upsert(ctx context.Context, otp models.OTP) error {
	return p.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"otp", "created_at"}),
	}).Create(&otp).Error
}

// Get the OTP record of the given email
func (p *Postgres) Get(ctx context.Context, email string) (*models.OTP, error) {
	var otp models.OTP
	err := p.DB.WithContext(ctx).Where("email = ?", email).First(&otp).Error
	if err != nil {
		if errs.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrRecordNotFound
		}

		return nil, err
	}

	return &otp, nil
}

// Delete the OTP record of the given email
func (p *Postgres) Delete(ctx context.Context, email string) error {
	return p.DB.WithContext(ctx).Where("email = ?", email).Delete(&models.OTP{}).Error
}

// DeleteExpired removes the records issued at or before the given time
func (p *Postgres) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := p.DB.WithContext(ctx).Where("created_at <= ?", before).Delete(&models.OTP{})
	return result.RowsAffected, result.Error
}

// Ping the database
func (p *Postgres) Ping(ctx context.Context) error {
	db, err := p.DB.DB()
	if err != nil {
		return err
	}

	return db.PingContext(ctx)
}
