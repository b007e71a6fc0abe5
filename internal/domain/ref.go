package domain

import (
	"fmt"
	"strings"
)

// NodeRef selects a node of a project: the project itself, or a phase, week
// or day by id. It is the materials and checklist context of every operation.
type NodeRef struct {
	Kind NodeKind `json:"kind"`
	ID   string   `json:"id,omitempty"`
}

// ProjectRef selects the project level of whichever project is active.
func ProjectRef() NodeRef { return NodeRef{Kind: NodeProject} }

func PhaseRef(id string) NodeRef { return NodeRef{Kind: NodePhase, ID: id} }
func WeekRef(id string) NodeRef  { return NodeRef{Kind: NodeWeek, ID: id} }
func DayRef(id string) NodeRef   { return NodeRef{Kind: NodeDay, ID: id} }

// IsZero reports whether no context was chosen.
func (r NodeRef) IsZero() bool { return r.Kind == "" }

func (r NodeRef) String() string {
	if r.Kind == NodeProject || r.Kind == "" {
		return string(NodeProject)
	}
	return string(r.Kind) + ":" + r.ID
}

// ParseNodeRef parses "project", "phase:ID", "week:ID" or "day:ID".
func ParseNodeRef(s string) (NodeRef, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == string(NodeProject) {
		return ProjectRef(), nil
	}
	kind, id, ok := strings.Cut(s, ":")
	if !ok || strings.TrimSpace(id) == "" {
		return NodeRef{}, fmt.Errorf("%w: %q (expected project, phase:ID, week:ID or day:ID)", ErrInvalidRef, s)
	}
	switch NodeKind(kind) {
	case NodePhase, NodeWeek, NodeDay:
		return NodeRef{Kind: NodeKind(kind), ID: strings.TrimSpace(id)}, nil
	default:
		return NodeRef{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidRef, kind)
	}
}
