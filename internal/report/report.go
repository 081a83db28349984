// Package report aggregates the deal pipeline into the dashboard and report figures.
package report

import (
	"time"

	"crm/internal/format"
	"crm/internal/model"
)

// StageFigure is the count and value of deals in one stage.
type StageFigure struct {
	Stage          model.Stage `json:"stage"`
	Label          string      `json:"label"`
	Count          int         `json:"count"`
	Value          float64     `json:"value"`
	FormattedValue string      `json:"formatted_value"`
	Share          float64     `json:"share"`
	FormattedShare string      `json:"formatted_share"`
}

type MonthFigure struct {
	Month          string  `json:"month"`
	Value          float64 `json:"value"`
	FormattedValue string  `json:"formatted_value"`
}

type Dashboard struct {
	TotalDeals          int           `json:"total_deals"`
	TotalValue          float64       `json:"total_value"`
	FormattedTotalValue string        `json:"formatted_total_value"`
	ActiveDeals         int           `json:"active_deals"`
	WonDeals            int           `json:"won_deals"`
	LostDeals           int           `json:"lost_deals"`
	ConversionRate      float64       `json:"conversion_rate"`
	FormattedConversion string        `json:"formatted_conversion_rate"`
	Funnel              []StageFigure `json:"funnel"`
	AverageValue        string        `json:"average_value"`
	MaxValue            string        `json:"max_value"`
	MinValue            string        `json:"min_value"`
	ActiveContacts      int           `json:"active_contacts"`
	PendingActivities   int           `json:"pending_activities"`
	ProposalsSent       int           `json:"proposals_sent"`
}

type Report struct {
	TotalDeals          int           `json:"total_deals"`
	ClosedDeals         int           `json:"closed_deals"`
	TreasureDeals       int           `json:"treasure_deals"`
	ConversionRate      float64       `json:"conversion_rate"`
	FormattedConversion string        `json:"formatted_conversion_rate"`
	Distribution        []StageFigure `json:"distribution"`
	TotalValue          string        `json:"total_value"`
	AverageValue        string        `json:"average_value"`
	Monthly             []MonthFigure `json:"monthly"`
}

// Inputs are the collections the dashboard summarises.
type Inputs struct {
	Deals      []model.Deal
	Contacts   []model.Contact
	Activities []model.Activity
	Proposals  []model.Proposal
}

// funnelStages are the stages a deal walks through after leaving the lead
// treasure; treasure deals count as lost on the dashboard.
var funnelStages = []model.Stage{
	model.StageLead,
	model.StageContact,
	model.StageProposal,
	model.StageNegotiation,
	model.StageClosed,
}

func BuildDashboard(in Inputs) Dashboard {
	deals := in.Deals
	d := Dashboard{TotalDeals: len(deals)}

	var minV, maxV float64
	for i, deal := range deals {
		d.TotalValue += deal.Value
		switch deal.Stage {
		case model.StageClosed:
			d.WonDeals++
		case model.StageTreasure:
			d.LostDeals++
		default:
			d.ActiveDeals++
		}
		if i == 0 || deal.Value < minV {
			minV = deal.Value
		}
		if i == 0 || deal.Value > maxV {
			maxV = deal.Value
		}
	}

	d.FormattedTotalValue = format.BRL(d.TotalValue)
	d.ConversionRate = percent(d.WonDeals, len(deals))
	d.FormattedConversion = format.Percent(d.ConversionRate)
	d.Funnel = stageFigures(deals, funnelStages)
	d.AverageValue = format.BRL(ratio(d.TotalValue, len(deals)))
	d.MaxValue = format.BRL(maxV)
	d.MinValue = format.BRL(minV)

	for _, c := range in.Contacts {
		if c.Status == model.ContactActive {
			d.ActiveContacts++
		}
	}
	for _, a := range in.Activities {
		if a.Status == model.ActivityPending {
			d.PendingActivities++
		}
	}
	for _, p := range in.Proposals {
		if p.Status == model.ProposalSent {
			d.ProposalsSent++
		}
	}
	return d
}

func BuildReport(deals []model.Deal) Report {
	r := Report{TotalDeals: len(deals)}

	var total float64
	monthly := make([]float64, 12)
	for _, deal := range deals {
		total += deal.Value
		switch deal.Stage {
		case model.StageClosed:
			r.ClosedDeals++
		case model.StageTreasure:
			r.TreasureDeals++
		}
		if deal.ExpectedCloseDate != nil && !deal.ExpectedCloseDate.IsZero() {
			monthly[deal.ExpectedCloseDate.Month()-1] += deal.Value
		}
	}

	r.ConversionRate = percent(r.ClosedDeals, len(deals))
	r.FormattedConversion = format.Percent(r.ConversionRate)
	r.Distribution = stageFigures(deals, model.Stages())
	r.TotalValue = format.BRL(total)
	r.AverageValue = format.BRL(ratio(total, len(deals)))

	r.Monthly = make([]MonthFigure, 12)
	for i, v := range monthly {
		r.Monthly[i] = MonthFigure{
			Month:          format.ShortMonth(time.Month(i + 1)),
			Value:          v,
			FormattedValue: format.BRL(v),
		}
	}
	return r
}

func stageFigures(deals []model.Deal, stages []model.Stage) []StageFigure {
	figs := make([]StageFigure, len(stages))
	for i, s := range stages {
		figs[i] = StageFigure{Stage: s, Label: s.Label()}
		for _, deal := range deals {
			if deal.Stage == s {
				figs[i].Count++
				figs[i].Value += deal.Value
			}
		}
		figs[i].FormattedValue = format.BRL(figs[i].Value)
		figs[i].Share = percent(figs[i].Count, len(deals))
		figs[i].FormattedShare = format.Percent(figs[i].Share)
	}
	return figs
}

// percent returns part/whole*100, or 0 for an empty whole.
func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func ratio(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
