package api

import (
	"github.com/carlosgonzalezvergara/vendler/aktionsart"
	"github.com/carlosgonzalezvergara/vendler/dialog"
	"github.com/carlosgonzalezvergara/vendler/ls"
	"github.com/carlosgonzalezvergara/vendler/sessionstore"
)

type createRequest struct {
	Kind string `json:"kind"`
	Lang string `json:"lang"`
}

// SessionView is what every session endpoint answers with.
type SessionView struct {
	Session   string              `json:"session"`
	Kind      sessionstore.Kind   `json:"kind"`
	Lang      aktionsart.Lang     `json:"lang,omitempty"`
	Parent    string              `json:"parent,omitempty"`
	Node      string              `json:"node"`
	Prompt    dialog.Prompt       `json:"prompt"`
	CanGoBack bool                `json:"can_go_back"`
	Finished  bool                `json:"finished"`
	Status    *aktionsart.Status  `json:"status,omitempty"`
	Handoff   *aktionsart.Handoff `json:"handoff,omitempty"`
	Info      []ls.InfoField      `json:"info,omitempty"`
	Result    string              `json:"result,omitempty"`
	LaTeX     string              `json:"latex,omitempty"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Warning string `json:"warning,omitempty"`
}
