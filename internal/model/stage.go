package model

import "fmt"

// Stage identifies one of the fixed pipeline phases a deal occupies.
type Stage string

const (
	StageTreasure    Stage = "treasure"
	StageLead        Stage = "lead"
	StageContact     Stage = "contact"
	StageProposal    Stage = "proposal"
	StageNegotiation Stage = "negotiation"
	StageClosed      Stage = "closed"
)

var stageOrder = []Stage{
	StageTreasure,
	StageLead,
	StageContact,
	StageProposal,
	StageNegotiation,
	StageClosed,
}

var stageLabels = map[Stage]string{
	StageTreasure:    "Baú de Leads",
	StageLead:        "Leads",
	StageContact:     "Primeiro Contato",
	StageProposal:    "Proposta",
	StageNegotiation: "Negociação",
	StageClosed:      "Fechado",
}

// Stages returns the pipeline stages in column order.
func Stages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

// Valid reports whether s is a member of the fixed stage set.
func (s Stage) Valid() bool {
	_, ok := stageLabels[s]
	return ok
}

// Label returns the display name of the stage, or "" for an unknown stage.
func (s Stage) Label() string {
	return stageLabels[s]
}

// Index returns the column position of the stage, or -1.
func (s Stage) Index() int {
	for i, st := range stageOrder {
		if st == s {
			return i
		}
	}
	return -1
}

func ParseStage(raw string) (Stage, error) {
	s := Stage(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown stage %q", raw)
	}
	return s, nil
}
