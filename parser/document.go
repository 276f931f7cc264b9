package parser

import (
	"io"

	"github.com/google/uuid"
)

// Document groups the events between a DocumentStart/DocumentEnd pair
// under a uuid minted when the group opens, so a caller streaming many
// documents out of one source can correlate a later diagnostic (or a
// batch handed to a worker) back to the document it came from without
// retaining every event already seen.
type Document struct {
	ID     uuid.UUID
	Events []Event
}

// NextDocument consumes events up to and including the next
// DocumentEnd and returns them as a Document. It returns io.EOF once
// the stream is exhausted.
func (p *Parser) NextDocument() (Document, error) {
	ev, err := p.Event()
	if err != nil {
		return Document{}, err
	}
	if ev.Kind == StreamStart {
		ev, err = p.Event()
		if err != nil {
			return Document{}, err
		}
	}
	if ev.Kind == StreamEnd {
		return Document{}, io.EOF
	}
	if ev.Kind != DocumentStart {
		return Document{}, p.newError(ev.StartMark, "expected <document start>")
	}

	doc := Document{ID: uuid.New(), Events: []Event{ev}}
	for {
		ev, err = p.Event()
		if err != nil {
			return Document{}, err
		}
		doc.Events = append(doc.Events, ev)
		if ev.Kind == DocumentEnd {
			return doc, nil
		}
	}
}

// Anchors returns a snapshot of the current document's anchor name to
// AnchorID table, for diagnostics; it resets at each DocumentEnd.
func (p *Parser) Anchors() map[string]AnchorID {
	out := make(map[string]AnchorID, len(p.anchors))
	for k, v := range p.anchors {
		out[k] = v
	}
	return out
}
