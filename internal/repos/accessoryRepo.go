package repos

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mab2k/homebridge-teufel/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

const initSchema = `
  CREATE TABLE IF NOT EXISTS accessory (
    id VARCHAR(36) PRIMARY KEY,
    display_name TEXT NOT NULL,
    device_name TEXT,
    device_udn TEXT,
    room_name TEXT,
    room_udn TEXT,
    zone_udn TEXT,
    created_at TIMESTAMP,
    updated_at TIMESTAMP
  );
`

var ErrAccessoryNotRegistered = errors.New("accessory not registered")

// AccessoryRepo persists registered accessories so they survive restarts.
type AccessoryRepo struct {
	logger *log.Logger
	db     *sql.DB
}

func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("Error opening database (%s): %w", path, err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)
	return db, nil
}

func NewAccessoryRepo(logger *log.Logger, db *sql.DB) (*AccessoryRepo, error) {

	_, err := db.Exec(initSchema)
	if err != nil {
		return nil, fmt.Errorf("Error initialising accessory schema: %w", err)
	}

	return &AccessoryRepo{logger: logger, db: db}, nil
}

func (r *AccessoryRepo) Register(acc models.Accessory) error {
	now := time.Now()
	_, err := r.db.Exec(
		`INSERT INTO accessory
      (id, display_name, device_name, device_udn, room_name, room_udn, zone_udn, created_at, updated_at)
     VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		acc.ID,
		acc.DisplayName,
		acc.Context.DeviceName,
		acc.Context.DeviceUdn,
		acc.Context.RoomName,
		acc.Context.RoomUdn,
		acc.Context.ZoneUdn,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("Error registering accessory (%s): %w", acc.DisplayName, err)
	}
	r.logger.Debug("registered accessory", "name", acc.DisplayName, "id", acc.ID)
	return nil
}

func (r *AccessoryRepo) Unregister(acc models.Accessory) error {
	res, err := r.db.Exec("DELETE FROM accessory WHERE id = $1", acc.ID)
	if err != nil {
		return fmt.Errorf("Error unregistering accessory (%s): %w", acc.DisplayName, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Error unregistering accessory (%s): %w", acc.DisplayName, err)
	}
	if n == 0 {
		return fmt.Errorf("Error unregistering accessory (%s): %w", acc.DisplayName, ErrAccessoryNotRegistered)
	}
	return nil
}

func (r *AccessoryRepo) Update(acc models.Accessory) error {
	res, err := r.db.Exec(`
    UPDATE accessory
    SET device_name = $1,
        device_udn  = $2,
        room_name   = $3,
        room_udn    = $4,
        zone_udn    = $5,
        updated_at  = $6
    WHERE id = $7`,
		acc.Context.DeviceName,
		acc.Context.DeviceUdn,
		acc.Context.RoomName,
		acc.Context.RoomUdn,
		acc.Context.ZoneUdn,
		time.Now(),
		acc.ID,
	)
	if err != nil {
		return fmt.Errorf("Error updating accessory (%s): %w", acc.DisplayName, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Error updating accessory (%s): %w", acc.DisplayName, err)
	}
	if n == 0 {
		return fmt.Errorf("Error updating accessory (%s): %w", acc.DisplayName, ErrAccessoryNotRegistered)
	}
	return nil
}

// GetAll returns the registered accessories in registration order.
func (r *AccessoryRepo) GetAll() ([]models.Accessory, error) {
	rows, err := r.db.Query(`
    SELECT id, display_name,
           coalesce(device_name, ''), coalesce(device_udn, ''),
           coalesce(room_name, ''), coalesce(room_udn, ''), coalesce(zone_udn, '')
    FROM accessory
    ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("Error reading accessories: %w", err)
	}
	defer rows.Close()

	accessories := []models.Accessory{}

	for rows.Next() {
		var acc models.Accessory
		err := rows.Scan(
			&acc.ID,
			&acc.DisplayName,
			&acc.Context.DeviceName,
			&acc.Context.DeviceUdn,
			&acc.Context.RoomName,
			&acc.Context.RoomUdn,
			&acc.Context.ZoneUdn,
		)
		if err != nil {
			return nil, fmt.Errorf("Error reading accessory row: %w", err)
		}
		accessories = append(accessories, acc)
	}

	return accessories, rows.Err()
}
