package handler

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EntityRef is a reference field that accepts either a bare id or an object carrying "id".
type EntityRef struct {
	ID uuid.UUID
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *EntityRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			ID uuid.UUID `json:"id"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return errors.Wrap(err, "invalid reference object")
		}
		r.ID = obj.ID

		return nil
	}

	return errors.Wrap(json.Unmarshal(data, &r.ID), "invalid reference id")
}

// MarshalJSON renders the reference as a bare id.
func (r EntityRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// Date is a calendar date written as YYYY-MM-DD.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "date must be a string")
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return errors.Wrap(err, "date must be YYYY-MM-DD")
	}
	d.Time = t

	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(time.DateOnly))
}

func (d *Date) timePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time

	return &t
}

func (r *EntityRef) idPtr() *uuid.UUID {
	if r == nil {
		return nil
	}
	id := r.ID

	return &id
}

// pathID parses a uuid path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))

	return id, err == nil
}

// queryID parses an optional uuid query parameter.
func queryID(c echo.Context, name string) (*uuid.UUID, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, true
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}

	return &id, true
}

// queryDate parses an optional YYYY-MM-DD query parameter.
func queryDate(c echo.Context, name string) (*time.Time, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, true
	}

	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, false
	}

	return &t, true
}
