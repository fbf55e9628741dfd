package v1handler

import (
	"bytes"
	"io"
	"net/http"
	"purger/internal/events"
	"purger/pkg/domain"
	"purger/pkg/serrors"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// MaxEventBodyBytes caps the size of an event payload.
const MaxEventBodyBytes = 64 << 10

// EventNameParam is the path wildcard holding the event name.
const EventNameParam = "name"

// PublishEventResponse is returned once an event was dispatched.
type PublishEventResponse struct {
	Event    string
	Handlers int
}

// Encode writes the response as a JSON object.
func (r PublishEventResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("event")
	e.Str(r.Event)
	e.FieldStart("handlers")
	e.Int(r.Handlers)
	e.ObjEnd()
}

// PublishEvent dispatches the event named in the path with the JSON body as
// payload. Purges triggered by the event are delivered asynchronously.
func (h Handler) PublishEvent(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue(EventNameParam)
	if !h.deps.Bus.Has(name) {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "unknown event %q", name))

		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, MaxEventBodyBytes+1))
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not read body"))

		return
	}
	if len(body) > MaxEventBodyBytes {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "payload too large"))

		return
	}

	payload, err := DecodePayload(body)
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid payload"))

		return
	}

	n := h.deps.Bus.Publish(r.Context(), events.Event{Name: name, Payload: payload})

	var e jx.Encoder
	PublishEventResponse{Event: name, Handlers: n}.Encode(&e)
	writeJSON(w, http.StatusAccepted, e.Bytes())
}

// DecodePayload parses an event payload. An empty body is an empty payload.
// The order of "params" keys is preserved. Unknown fields are ignored.
func DecodePayload(body []byte) (events.Payload, error) {
	var p events.Payload
	if len(bytes.TrimSpace(body)) == 0 {
		return p, nil
	}

	d := jx.DecodeBytes(body)
	if d.Next() != jx.Object {
		return p, errors.New("payload must be a JSON object")
	}

	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "post_id":
			v, err := d.Int64()
			if err != nil {
				return errors.Wrap(err, "decode post_id")
			}
			p.PostID = domain.PostID(v)
		case "term_id":
			v, err := d.Int64()
			if err != nil {
				return errors.Wrap(err, "decode term_id")
			}
			p.TermID = domain.TermID(v)
		case "taxonomy":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode taxonomy")
			}
			p.Taxonomy = domain.Taxonomy(v)
		case "url":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode url")
			}
			p.URL = v
		case "action":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode action")
			}
			p.Action = v
		case "post_type":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode post_type")
			}
			p.PostType = domain.PostType(v)
		case "params":
			params, err := decodeParams(d)
			if err != nil {
				return errors.Wrap(err, "decode params")
			}
			p.Params = params
		default:
			return d.Skip()
		}

		return nil
	})
	if err != nil {
		return events.Payload{}, err
	}

	return p, nil
}

// decodeParams reads a flat object of scalars in document order.
func decodeParams(d *jx.Decoder) (domain.Params, error) {
	var params domain.Params
	if d.Next() == jx.Null {
		return params, d.Null()
	}

	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		v, err := scalarString(d)
		if err != nil {
			return errors.Wrapf(err, "param %q", key)
		}
		params.Set(string(key), v)

		return nil
	})

	return params, err
}

func scalarString(d *jx.Decoder) (string, error) {
	switch t := d.Next(); t {
	case jx.String:
		return d.Str()
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return "", err
		}

		return n.String(), nil
	case jx.Bool:
		b, err := d.Bool()
		if err != nil {
			return "", err
		}

		return strconv.FormatBool(b), nil
	default:
		return "", errors.Errorf("unexpected %s, want a scalar", t)
	}
}
