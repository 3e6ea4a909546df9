package crm

import (
	"sort"
	"time"

	"github.com/ignite/pipeline-portal/internal/domain"
)

// Board is the CRM kanban view: one column per pipeline stage plus the New
// column, each lead appearing exactly once in its deepest stage's column.
// The board is derived read-only state; drag-and-drop mutation lives with
// the presentation layer and its own write path, not here.
type Board struct {
	GeneratedAt time.Time `json:"generated_at"`
	TotalLeads  int       `json:"total_leads"`
	Columns     []Column  `json:"columns"`
}

// Column is one kanban column.
type Column struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Order int    `json:"order"`
	Count int    `json:"count"`
	Cards []Card `json:"cards"`
}

// Card is one lead rendered on the board.
type Card struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Company        string     `json:"company,omitempty"`
	Client         string     `json:"client,omitempty"`
	Stage          string     `json:"stage"`
	StageChangedAt *time.Time `json:"stage_changed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	Order          int        `json:"order"`
}

// BuildBoard assembles the kanban board from lead records. Columns follow
// pipeline order with New first; cards within a column sort by most recent
// stage activity.
func BuildBoard(leads []domain.PipelineLead, now time.Time) *Board {
	board := &Board{
		GeneratedAt: now,
		TotalLeads:  len(leads),
		Columns:     make([]Column, 0, len(Stages)+1),
	}

	board.Columns = append(board.Columns, Column{ID: "new", Title: StageNew, Order: 0})
	for i, s := range Stages {
		board.Columns = append(board.Columns, Column{ID: s.ID, Title: s.Title, Order: i + 1})
	}

	colIndex := make(map[string]int, len(board.Columns))
	for i, c := range board.Columns {
		colIndex[c.Title] = i
	}

	for _, l := range leads {
		card := Card{
			ID:        l.ID,
			Title:     cardTitle(l),
			Company:   l.CompanyName,
			Client:    l.Client,
			Stage:     StageNew,
			CreatedAt: l.CreatedAt,
		}
		if s, ok := DeepestStage(l); ok {
			card.Stage = s.Title
			card.StageChangedAt = s.ReachedAt(l)
		}
		i := colIndex[card.Stage]
		board.Columns[i].Cards = append(board.Columns[i].Cards, card)
	}

	for i := range board.Columns {
		col := &board.Columns[i]
		sort.SliceStable(col.Cards, func(a, b int) bool {
			return cardActivity(col.Cards[a]).After(cardActivity(col.Cards[b]))
		})
		for j := range col.Cards {
			col.Cards[j].Order = j
		}
		col.Count = len(col.Cards)
	}

	return board
}

func cardTitle(l domain.PipelineLead) string {
	if l.LeadName != "" {
		return l.LeadName
	}
	if l.Email != "" {
		return l.Email
	}
	return l.ID
}

func cardActivity(c Card) time.Time {
	if c.StageChangedAt != nil {
		return *c.StageChangedAt
	}
	return c.CreatedAt
}
