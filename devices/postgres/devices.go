// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

// Package postgres contains repository implementations using PostgreSQL as
// the underlying database.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/oneclickio/oneclick/devices"
	"github.com/oneclickio/oneclick/pkg/errors"
	repoerr "github.com/oneclickio/oneclick/pkg/errors/repository"
	"github.com/oneclickio/oneclick/pkg/postgres"
)

type repository struct {
	db postgres.Database
}

// NewRepository instantiates a PostgreSQL implementation of the
// devices repository.
func NewRepository(db postgres.Database) devices.Repository {
	return &repository{db: db}
}

func (repo *repository) Save(ctx context.Context, device devices.Device) (devices.Device, error) {
	q := `INSERT INTO devices (id, type, claim_code, claim_state, enabled, owner, remaining_life, tags, methods, created_at, updated_at)
		VALUES (:id, :type, :claim_code, :claim_state, :enabled, :owner, :remaining_life, :tags, :methods, :created_at, :updated_at)
		RETURNING id, type, claim_code, claim_state, enabled, owner, remaining_life, tags, methods, created_at, updated_at;`

	dbd, err := toDBDevice(device)
	if err != nil {
		return devices.Device{}, errors.Wrap(repoerr.ErrCreateEntity, err)
	}

	row, err := repo.db.NamedQueryContext(ctx, q, dbd)
	if err != nil {
		return devices.Device{}, postgres.HandleError(repoerr.ErrCreateEntity, err)
	}
	defer row.Close()

	return scanDevice(row, repoerr.ErrCreateEntity)
}

func (repo *repository) RetrieveByID(ctx context.Context, id string) (devices.Device, error) {
	q := `SELECT id, type, claim_code, claim_state, enabled, owner, remaining_life, tags, methods, created_at, updated_at
		FROM devices WHERE id = :id;`

	row, err := repo.db.NamedQueryContext(ctx, q, dbDevice{ID: id})
	if err != nil {
		return devices.Device{}, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer row.Close()

	return scanDevice(row, repoerr.ErrNotFound)
}

func (repo *repository) RetrieveByClaimCode(ctx context.Context, code string) ([]devices.Device, error) {
	q := `SELECT id, type, claim_code, claim_state, enabled, owner, remaining_life, tags, methods, created_at, updated_at
		FROM devices WHERE claim_code = :claim_code ORDER BY created_at;`

	rows, err := repo.db.NamedQueryContext(ctx, q, dbDevice{ClaimCode: code})
	if err != nil {
		return nil, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer rows.Close()

	var items []devices.Device
	for rows.Next() {
		var dbd dbDevice
		if err := rows.StructScan(&dbd); err != nil {
			return nil, errors.Wrap(repoerr.ErrViewEntity, err)
		}
		device, err := toDevice(dbd)
		if err != nil {
			return nil, errors.Wrap(repoerr.ErrViewEntity, err)
		}
		items = append(items, device)
	}

	return items, nil
}

func (repo *repository) RetrieveAll(ctx context.Context, pm devices.Page) (devices.DevicesPage, error) {
	query := pageQuery(pm)
	dir := "ASC"
	if strings.EqualFold(pm.Direction, "desc") {
		dir = "DESC"
	}

	q := fmt.Sprintf(`SELECT id, type, claim_code, claim_state, enabled, owner, remaining_life, tags, methods, created_at, updated_at
		FROM devices %s ORDER BY created_at %s LIMIT :limit OFFSET :offset;`, query, dir)

	params := toDBPage(pm)
	rows, err := repo.db.NamedQueryContext(ctx, q, params)
	if err != nil {
		return devices.DevicesPage{}, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer rows.Close()

	var items []devices.Device
	for rows.Next() {
		var dbd dbDevice
		if err := rows.StructScan(&dbd); err != nil {
			return devices.DevicesPage{}, errors.Wrap(repoerr.ErrViewEntity, err)
		}
		device, err := toDevice(dbd)
		if err != nil {
			return devices.DevicesPage{}, errors.Wrap(repoerr.ErrViewEntity, err)
		}
		items = append(items, device)
	}

	tq := fmt.Sprintf(`SELECT COUNT(*) FROM devices %s;`, query)

	total, err := postgres.Total(ctx, repo.db, tq, params)
	if err != nil {
		return devices.DevicesPage{}, postgres.HandleError(repoerr.ErrViewEntity, err)
	}

	return devices.DevicesPage{
		Total:   total,
		Offset:  pm.Offset,
		Limit:   pm.Limit,
		Devices: items,
	}, nil
}

func (repo *repository) Update(ctx context.Context, device devices.Device) (devices.Device, error) {
	q := `UPDATE devices SET type = :type, claim_state = :claim_state, enabled = :enabled, owner = :owner,
		remaining_life = :remaining_life, tags = :tags, methods = :methods, updated_at = :updated_at
		WHERE id = :id
		RETURNING id, type, claim_code, claim_state, enabled, owner, remaining_life, tags, methods, created_at, updated_at;`

	dbd, err := toDBDevice(device)
	if err != nil {
		return devices.Device{}, errors.Wrap(repoerr.ErrUpdateEntity, err)
	}

	row, err := repo.db.NamedQueryContext(ctx, q, dbd)
	if err != nil {
		return devices.Device{}, postgres.HandleError(repoerr.ErrUpdateEntity, err)
	}
	defer row.Close()

	return scanDevice(row, repoerr.ErrNotFound)
}

func (repo *repository) SaveEvent(ctx context.Context, event devices.Event) error {
	q := `INSERT INTO device_events (id, device_id, type, payload, occurred_at)
		VALUES (:id, :device_id, :type, :payload, :occurred_at);`

	dbe := toDBEvent(event)
	if _, err := repo.db.NamedExecContext(ctx, q, dbe); err != nil {
		return postgres.HandleError(repoerr.ErrCreateEntity, err)
	}

	return nil
}

func (repo *repository) RetrieveEvents(ctx context.Context, deviceID string, pm devices.Page) (devices.EventsPage, error) {
	query := eventsQuery(pm)
	dir := "ASC"
	if strings.EqualFold(pm.Direction, "desc") {
		dir = "DESC"
	}

	q := fmt.Sprintf(`SELECT id, device_id, type, payload, occurred_at FROM device_events %s ORDER BY occurred_at %s LIMIT :limit OFFSET :offset;`, query, dir)

	params := toDBPage(pm)
	params.DeviceID = deviceID
	rows, err := repo.db.NamedQueryContext(ctx, q, params)
	if err != nil {
		return devices.EventsPage{}, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer rows.Close()

	var items []devices.Event
	for rows.Next() {
		var dbe dbEvent
		if err := rows.StructScan(&dbe); err != nil {
			return devices.EventsPage{}, errors.Wrap(repoerr.ErrViewEntity, err)
		}
		items = append(items, toEvent(dbe))
	}

	tq := fmt.Sprintf(`SELECT COUNT(*) FROM device_events %s;`, query)

	total, err := postgres.Total(ctx, repo.db, tq, params)
	if err != nil {
		return devices.EventsPage{}, postgres.HandleError(repoerr.ErrViewEntity, err)
	}

	return devices.EventsPage{
		Total:  total,
		Offset: pm.Offset,
		Limit:  pm.Limit,
		Events: items,
	}, nil
}

func pageQuery(pm devices.Page) string {
	var query []string
	var emq string
	if pm.Type != "" {
		query = append(query, "type = :type")
	}
	if pm.WithState {
		query = append(query, "claim_state = :claim_state")
	}
	if pm.Enabled != nil {
		query = append(query, "enabled = :enabled")
	}

	if len(query) > 0 {
		emq = fmt.Sprintf("WHERE %s", strings.Join(query, " AND "))
	}

	return emq
}

func eventsQuery(pm devices.Page) string {
	query := []string{"device_id = :device_id"}
	if pm.Type != "" {
		query = append(query, "type = :type")
	}
	if !pm.From.IsZero() {
		query = append(query, "occurred_at >= :from")
	}
	if !pm.To.IsZero() {
		query = append(query, "occurred_at <= :to")
	}

	return fmt.Sprintf("WHERE %s", strings.Join(query, " AND "))
}

func scanDevice(row *sqlx.Rows, wrapper error) (devices.Device, error) {
	if !row.Next() {
		return devices.Device{}, wrapper
	}
	var dbd dbDevice
	if err := row.StructScan(&dbd); err != nil {
		return devices.Device{}, errors.Wrap(wrapper, err)
	}

	device, err := toDevice(dbd)
	if err != nil {
		return devices.Device{}, errors.Wrap(wrapper, err)
	}

	return device, nil
}

type dbDevice struct {
	ID            string       `db:"id"`
	Type          string       `db:"type"`
	ClaimCode     string       `db:"claim_code"`
	ClaimState    int          `db:"claim_state"`
	Enabled       bool         `db:"enabled"`
	Owner         string       `db:"owner"`
	RemainingLife float64      `db:"remaining_life"`
	Tags          []byte       `db:"tags"`
	Methods       []byte       `db:"methods"`
	CreatedAt     time.Time    `db:"created_at"`
	UpdatedAt     sql.NullTime `db:"updated_at"`
}

type dbEvent struct {
	ID         string    `db:"id"`
	DeviceID   string    `db:"device_id"`
	Type       string    `db:"type"`
	Payload    []byte    `db:"payload"`
	OccurredAt time.Time `db:"occurred_at"`
}

type dbPage struct {
	Offset     uint64    `db:"offset"`
	Limit      uint64    `db:"limit"`
	Type       string    `db:"type"`
	ClaimState int       `db:"claim_state"`
	Enabled    bool      `db:"enabled"`
	From       time.Time `db:"from"`
	To         time.Time `db:"to"`
	DeviceID   string    `db:"device_id"`
}

func toDBPage(pm devices.Page) dbPage {
	p := dbPage{
		Offset:     pm.Offset,
		Limit:      pm.Limit,
		Type:       pm.Type,
		ClaimState: int(pm.State),
		From:       pm.From,
		To:         pm.To,
	}
	if pm.Enabled != nil {
		p.Enabled = *pm.Enabled
	}

	return p
}

func toDBDevice(device devices.Device) (dbDevice, error) {
	tags, err := json.Marshal(device.Tags)
	if err != nil {
		return dbDevice{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}
	methods, err := json.Marshal(device.Methods)
	if err != nil {
		return dbDevice{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}

	dbd := dbDevice{
		ID:            device.ID,
		Type:          device.Type,
		ClaimCode:     device.ClaimCode,
		ClaimState:    int(device.ClaimState),
		Enabled:       device.Enabled,
		Owner:         device.Owner,
		RemainingLife: device.RemainingLife,
		Tags:          tags,
		Methods:       methods,
		CreatedAt:     device.CreatedAt,
	}
	if !device.UpdatedAt.IsZero() {
		dbd.UpdatedAt = sql.NullTime{Time: device.UpdatedAt, Valid: true}
	}

	return dbd, nil
}

func toDevice(dbd dbDevice) (devices.Device, error) {
	var tags map[string]string
	if len(dbd.Tags) > 0 {
		if err := json.Unmarshal(dbd.Tags, &tags); err != nil {
			return devices.Device{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
		}
	}
	var methods []devices.Method
	if len(dbd.Methods) > 0 {
		if err := json.Unmarshal(dbd.Methods, &methods); err != nil {
			return devices.Device{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
		}
	}

	device := devices.Device{
		ID:            dbd.ID,
		Type:          dbd.Type,
		ClaimCode:     dbd.ClaimCode,
		ClaimState:    devices.ClaimState(dbd.ClaimState),
		Enabled:       dbd.Enabled,
		Owner:         dbd.Owner,
		RemainingLife: dbd.RemainingLife,
		Tags:          tags,
		Methods:       methods,
		CreatedAt:     dbd.CreatedAt,
	}
	if dbd.UpdatedAt.Valid {
		device.UpdatedAt = dbd.UpdatedAt.Time
	}

	return device, nil
}

func toDBEvent(event devices.Event) dbEvent {
	return dbEvent{
		ID:         event.ID,
		DeviceID:   event.DeviceID,
		Type:       event.Type,
		Payload:    event.Payload,
		OccurredAt: event.OccurredAt,
	}
}

func toEvent(dbe dbEvent) devices.Event {
	return devices.Event{
		ID:         dbe.ID,
		DeviceID:   dbe.DeviceID,
		Type:       dbe.Type,
		Payload:    dbe.Payload,
		OccurredAt: dbe.OccurredAt,
	}
}
