package handler

import (
	"time"

	habitsdomain "habit-tracker-go/internal/domain/habits"
	reportsdomain "habit-tracker-go/internal/domain/reports"
	templatesdomain "habit-tracker-go/internal/domain/templates"
	trackingdomain "habit-tracker-go/internal/domain/tracking"
	userdomain "habit-tracker-go/internal/domain/user"
	"habit-tracker-go/pkg/logger"
)

type TokenIssuer interface {
	Issue(userID, username string) (string, time.Time, error)
}

type Handlers struct {
	Users     *userdomain.Service
	Habits    *habitsdomain.Service
	Templates *templatesdomain.Service
	Tracking  *trackingdomain.Service
	Reports   *reportsdomain.Service
	tokens    TokenIssuer
	log       logger.Logger
}

func New(users *userdomain.Service, habits *habitsdomain.Service, templates *templatesdomain.Service, tracking *trackingdomain.Service, reports *reportsdomain.Service, tokens TokenIssuer, log logger.Logger) *Handlers {
	return &Handlers{
		Users:     users,
		Habits:    habits,
		Templates: templates,
		Tracking:  tracking,
		Reports:   reports,
		tokens:    tokens,
		log:       log,
	}
}
