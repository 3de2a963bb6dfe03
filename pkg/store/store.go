// Package store persists the roster, schedule and settings, converting
// between the gorm records and the in-memory structures the scheduler
// engine works on.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ipgdev/diaconia-api-go/pkg/database"
	"github.com/ipgdev/diaconia-api-go/pkg/models"
)

// ErrMalformedDay signals a schedule row whose services blob does not
// hold the fixed 2x3 slot topology. Stored data is validated on load
// instead of being trusted blindly.
var ErrMalformedDay = errors.New("malformed schedule day")

// ErrNotFound signals a missing roster entry.
var ErrNotFound = errors.New("not found")

// Settings keys and their seed values.
const (
	SettingAppTitle           = "app_title"
	SettingDeaconSectionTitle = "deacon_section_title"
	SettingDashboardInfo      = "dashboard_info"
)

var defaultSettings = models.AppSettings{
	AppTitle:           "Junta Diaconal IPGII",
	DeaconSectionTitle: "Diáconos",
	DashboardInfo:      "A escala está sujeita a alterações. Por favor, comunique qualquer troca com antecedência.",
}

// Store wraps the database handle with the rota persistence operations.
type Store struct {
	DB *gorm.DB
}

// New returns a Store over the given database handle.
func New(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// --- Roster ---

// Volunteers returns the roster ordered alphabetically by name.
func (s *Store) Volunteers() ([]models.Volunteer, error) {
	var records []database.VolunteerRecord
	if err := s.DB.Order("name asc").Find(&records).Error; err != nil {
		return nil, err
	}
	volunteers := make([]models.Volunteer, len(records))
	for i, r := range records {
		volunteers[i] = models.Volunteer{ID: r.ID, Name: r.Name, Phone: r.Phone}
	}
	return volunteers, nil
}

// CreateVolunteer adds a deacon to the roster with a fresh id.
func (s *Store) CreateVolunteer(name, phone string) (models.Volunteer, error) {
	record := database.VolunteerRecord{
		ID:    uuid.NewString(),
		Name:  name,
		Phone: phone,
	}
	if err := s.DB.Create(&record).Error; err != nil {
		return models.Volunteer{}, err
	}
	return models.Volunteer{ID: record.ID, Name: record.Name, Phone: record.Phone}, nil
}

// UpdateVolunteer changes a deacon's name and phone.
func (s *Store) UpdateVolunteer(id, name, phone string) (models.Volunteer, error) {
	var record database.VolunteerRecord
	if err := s.DB.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Volunteer{}, fmt.Errorf("%w: volunteer %s", ErrNotFound, id)
		}
		return models.Volunteer{}, err
	}
	record.Name = name
	record.Phone = phone
	if err := s.DB.Save(&record).Error; err != nil {
		return models.Volunteer{}, err
	}
	return models.Volunteer{ID: record.ID, Name: record.Name, Phone: record.Phone}, nil
}

// DeleteVolunteer removes a deacon from the roster. Existing schedule
// references are left in place and render as unknown.
func (s *Store) DeleteVolunteer(id string) error {
	res := s.DB.Delete(&database.VolunteerRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: volunteer %s", ErrNotFound, id)
	}
	return nil
}

// --- Schedule ---

// LoadSchedule reads the full schedule map. Rows whose services blob
// does not decode to the fixed topology fail the load.
func (s *Store) LoadSchedule() (models.ScheduleMap, error) {
	var rows []database.ScheduleDay
	if err := s.DB.Find(&rows).Error; err != nil {
		return nil, err
	}
	m := make(models.ScheduleMap, len(rows))
	for _, row := range rows {
		day, err := decodeServices(row)
		if err != nil {
			return nil, err
		}
		m[row.Date] = day
	}
	return m, nil
}

// SaveDays upserts the given date keys from the schedule map. Keys not
// present in the map are skipped; callers pass exactly what changed.
func (s *Store) SaveDays(m models.ScheduleMap, keys []string) error {
	for _, key := range keys {
		day, ok := m[key]
		if !ok {
			continue
		}
		blob, err := json.Marshal(day.Services)
		if err != nil {
			return fmt.Errorf("encode day %s: %w", key, err)
		}
		row := database.ScheduleDay{Date: key, Services: blob}
		err = s.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"services", "updated_at"}),
		}).Create(&row).Error
		if err != nil {
			return fmt.Errorf("save day %s: %w", key, err)
		}
	}
	return nil
}

func decodeServices(row database.ScheduleDay) (*models.DaySchedule, error) {
	var services map[models.ServiceTime][]models.Shift
	if err := json.Unmarshal(row.Services, &services); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedDay, row.Date, err)
	}
	if len(services) != len(models.ServiceTimes) {
		return nil, fmt.Errorf("%w: %s: expected %d services, got %d",
			ErrMalformedDay, row.Date, len(models.ServiceTimes), len(services))
	}
	for _, t := range models.ServiceTimes {
		slots, ok := services[t]
		if !ok {
			return nil, fmt.Errorf("%w: %s: missing service %s", ErrMalformedDay, row.Date, t)
		}
		if len(slots) != models.SlotsPerService {
			return nil, fmt.Errorf("%w: %s %s: expected %d slots, got %d",
				ErrMalformedDay, row.Date, t, models.SlotsPerService, len(slots))
		}
	}
	return &models.DaySchedule{Date: row.Date, Services: services}, nil
}

// --- Settings ---

// Settings returns the display texts, falling back to the seed values
// for keys that were never edited.
func (s *Store) Settings() (models.AppSettings, error) {
	var rows []database.Setting
	if err := s.DB.Find(&rows).Error; err != nil {
		return models.AppSettings{}, err
	}
	settings := defaultSettings
	for _, row := range rows {
		switch row.Key {
		case SettingAppTitle:
			settings.AppTitle = row.Value
		case SettingDeaconSectionTitle:
			settings.DeaconSectionTitle = row.Value
		case SettingDashboardInfo:
			settings.DashboardInfo = row.Value
		}
	}
	return settings, nil
}

// UpdateSettings upserts all three display texts.
func (s *Store) UpdateSettings(settings models.AppSettings) error {
	rows := []database.Setting{
		{Key: SettingAppTitle, Value: settings.AppTitle},
		{Key: SettingDeaconSectionTitle, Value: settings.DeaconSectionTitle},
		{Key: SettingDashboardInfo, Value: settings.DashboardInfo},
	}
	for _, row := range rows {
		err := s.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).Create(&row).Error
		if err != nil {
			return err
		}
	}
	return nil
}
