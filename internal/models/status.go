package models

import (
	"fmt"
	"strings"
)

type EntryStatus string

const (
	StatusWaiting   EntryStatus = "waiting"
	StatusCalled    EntryStatus = "called"
	StatusInService EntryStatus = "in_service"
	StatusDone      EntryStatus = "done"
	StatusLeft      EntryStatus = "left"
	StatusNoShow    EntryStatus = "no_show"
)

func (s EntryStatus) IsTerminal() bool {
	return s == StatusDone || s == StatusLeft || s == StatusNoShow
}

func (s EntryStatus) IsActive() bool {
	return s == StatusWaiting || s == StatusCalled || s == StatusInService
}

func (s EntryStatus) Valid() bool {
	return s.IsActive() || s.IsTerminal()
}

// Spellings still sent by older clients. Internal code only ever sees canonical values.
var statusAliases = map[string]EntryStatus{
	"waiting":        StatusWaiting,
	"aguardando":     StatusWaiting,
	"esperando":      StatusWaiting,
	"called":         StatusCalled,
	"proximo":        StatusCalled,
	"próximo":        StatusCalled,
	"chamado":        StatusCalled,
	"in_service":     StatusInService,
	"atendendo":      StatusInService,
	"em_atendimento": StatusInService,
	"done":           StatusDone,
	"finalizado":     StatusDone,
	"concluido":      StatusDone,
	"concluído":      StatusDone,
	"left":           StatusLeft,
	"saiu":           StatusLeft,
	"removido":       StatusLeft,
	"no_show":        StatusNoShow,
	"ausente":        StatusNoShow,
	"nao_compareceu": StatusNoShow,
}

// ParseStatus normalises an external status spelling into the canonical enumeration.
func ParseStatus(raw string) (EntryStatus, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.ReplaceAll(key, "-", "_")
	key = strings.ReplaceAll(key, " ", "_")
	if s, ok := statusAliases[key]; ok {
		return s, nil
	}
	return "", fmt.Errorf("unknown entry status %q", raw)
}
