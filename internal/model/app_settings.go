package model

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// ErrInvalidAppID is returned when an org or app segment is malformed.
var ErrInvalidAppID = errors.New("invalid app id")

var segmentPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]{0,62}$`)

// AppSettings is the stored settings record of a single app.
// It carries no persistence tags and is shared by the HTTP, service and storage layers.
type AppSettings struct {
	AppID     string            `json:"appId" example:"ttd/tax-report"`
	Settings  ComponentSettings `json:"componentSettings"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// NewAppID validates org and app and joins them as "org/app".
func NewAppID(org, app string) (string, error) {
	if !segmentPattern.MatchString(org) || !segmentPattern.MatchString(app) {
		return "", ErrInvalidAppID
	}
	return org + "/" + app, nil
}

// SplitAppID is the inverse of NewAppID.
func SplitAppID(appID string) (org, app string, err error) {
	org, app, ok := strings.Cut(appID, "/")
	if !ok || !segmentPattern.MatchString(org) || !segmentPattern.MatchString(app) {
		return "", "", ErrInvalidAppID
	}
	return org, app, nil
}
