package events

import (
	"encoding/json"
	"log/slog"

	"github.com/mcoot/moonlight21/internal/api/response"
	"github.com/mcoot/moonlight21/internal/model"
	"github.com/mcoot/moonlight21/internal/services/table"
)

// Event names sent to table watchers
const (
	EventTable   = "table"
	EventDeleted = "deleted"
)

// Broadcaster pushes committed table changes to anyone watching the table
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// Ensure Broadcaster implements table.Observer
var _ table.Observer = (*Broadcaster)(nil)

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "events-broadcaster")),
	}
}

// TableUpdated sends the table's public view, hole card hidden while seats act
func (b *Broadcaster) TableUpdated(t *model.Table) {
	hub := b.hubManager.GetHub(t.ID)
	if hub == nil {
		return
	}

	msg, err := TableMessage(t)
	if err != nil {
		b.logger.Error("failed to encode table event",
			slog.String("table_id", string(t.ID)),
			slog.String("error", err.Error()))
		return
	}
	hub.Broadcast(msg)
}

// TableDeleted tells watchers the table is gone and closes their streams
func (b *Broadcaster) TableDeleted(id model.TableID) {
	hub := b.hubManager.GetHub(id)
	if hub == nil {
		return
	}

	hub.BroadcastEvent(EventDeleted, `{"id":"`+string(id)+`"}`)
	b.hubManager.RemoveHub(id)
}

// TableMessage encodes t as a "table" event
func TableMessage(t *model.Table) ([]byte, error) {
	data, err := json.Marshal(response.TableFromModel(t))
	if err != nil {
		return nil, err
	}
	return formatMessage(EventTable, string(data)), nil
}
