package pipeline

import (
	"crm/internal/model"

	log "github.com/sirupsen/logrus"
)

// Column is the projection of one stage on the kanban board.
type Column struct {
	Stage model.Stage
	Label string
	Deals []model.Deal
	Total float64
}

// Group partitions deals into one column per stage, in stage order, keeping
// the order deals arrive in. Deals with a stage outside the fixed set are
// left out of every column and logged.
func Group(deals []model.Deal) []Column {
	stages := model.Stages()
	cols := make([]Column, len(stages))
	for i, s := range stages {
		cols[i] = Column{Stage: s, Label: s.Label(), Deals: []model.Deal{}}
	}
	for _, d := range deals {
		i := d.Stage.Index()
		if i < 0 {
			log.WithFields(log.Fields{"deal": d.ID, "stage": d.Stage}).Warn("deal has unknown stage, skipped from board")
			continue
		}
		cols[i].Deals = append(cols[i].Deals, d)
		cols[i].Total += d.Value
	}
	return cols
}
