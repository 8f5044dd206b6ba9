package posting

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("posting not found")

type WorkMode string

const (
	WorkModeOnSite WorkMode = "presencial"
	WorkModeRemote WorkMode = "remoto"
	WorkModeHybrid WorkMode = "hibrido"
)

func ParseWorkMode(s string) (WorkMode, bool) {
	m := WorkMode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case WorkModeOnSite, WorkModeRemote, WorkModeHybrid:
		return m, true
	default:
		return "", false
	}
}

type Posting struct {
	ID          uuid.UUID
	Title       string
	Company     string
	Industry    string
	Education   string
	Skills      string
	Schedule    string
	Location    string
	Mode        WorkMode
	Salary      string // derived display string, see FormatSalary
	Description string
	Active      bool
	PublishedAt time.Time
}
