// Package workflow holds the rules governing how a travel request moves
// between employee, HOD, admin and driver hands: which records each role
// sees, and which state transitions a decision may apply.
package workflow

import (
	"errors"

	"gorm.io/gorm"

	"travel_desk/internal/models"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrInvalidTransition = errors.New("request already decided")
)

// --- Dashboard queries. All read-only; no matches means an empty slice. ---

// ListEmployeeRequests returns the employee's own travel requests in range.
func ListEmployeeRequests(db *gorm.DB, employeeCode string, r DateRange) ([]models.EmployeeTravelRequest, error) {
	var trfs []models.EmployeeTravelRequest
	err := db.Where("employee_code = ? AND date_of_request >= ? AND date_of_request < ?",
		employeeCode, r.From, r.To).
		Find(&trfs).Error
	return trfs, err
}

// ListReceivedRequests returns pending employee requests addressed to the HOD.
func ListReceivedRequests(db *gorm.DB, hodID string, r DateRange) ([]models.EmployeeTravelRequest, error) {
	var trfs []models.EmployeeTravelRequest
	err := db.Where("hod_id = ? AND status = ? AND date_of_request >= ? AND date_of_request < ?",
		hodID, models.StatusPending, r.From, r.To).
		Find(&trfs).Error
	return trfs, err
}

// ListSentRequests returns the HOD's own escalated requests in range,
// whatever their state.
func ListSentRequests(db *gorm.DB, hodID string, r DateRange) ([]models.HodTravelRequest, error) {
	var trfs []models.HodTravelRequest
	err := db.Where("hod_id = ? AND date_of_request >= ? AND date_of_request < ?",
		hodID, r.From, r.To).
		Find(&trfs).Error
	return trfs, err
}

// ListDriverBookings returns all driver bookings in range. Not scoped to the
// requesting HOD: every HOD sees the whole motor pool schedule.
func ListDriverBookings(db *gorm.DB, r DateRange) ([]models.DriverBooking, error) {
	var bookings []models.DriverBooking
	err := db.Where("date >= ? AND date < ?", r.From, r.To).Find(&bookings).Error
	return bookings, err
}

// ListBookingsForDriver returns the driver's bookings in range.
func ListBookingsForDriver(db *gorm.DB, driverID string, r DateRange) ([]models.DriverBooking, error) {
	var bookings []models.DriverBooking
	err := db.Where("driver_id = ? AND date >= ? AND date < ?", driverID, r.From, r.To).
		Find(&bookings).Error
	return bookings, err
}

// ListBookingHistory returns every booking ever assigned to the driver.
func ListBookingHistory(db *gorm.DB, driverID string) ([]models.DriverBooking, error) {
	var bookings []models.DriverBooking
	err := db.Where("driver_id = ?", driverID).Order("date desc").Find(&bookings).Error
	return bookings, err
}

// ListHodRequests returns all HOD requests in range (admin dashboard).
func ListHodRequests(db *gorm.DB, r DateRange) ([]models.HodTravelRequest, error) {
	var trfs []models.HodTravelRequest
	err := db.Where("date_of_request >= ? AND date_of_request < ?", r.From, r.To).
		Find(&trfs).Error
	return trfs, err
}

// ListAllHodRequests returns every HOD request on file, newest first.
func ListAllHodRequests(db *gorm.DB) ([]models.HodTravelRequest, error) {
	var trfs []models.HodTravelRequest
	err := db.Order("date_of_request desc").Find(&trfs).Error
	return trfs, err
}

// --- Mutations. ---

// CreateBooking inserts a driver booking as submitted by an HOD.
func CreateBooking(db *gorm.DB, booking *models.DriverBooking) error {
	return db.Create(booking).Error
}

// CreateEmployeeRequest inserts an employee travel request. The initial
// state is always pending, whatever the payload carried.
func CreateEmployeeRequest(db *gorm.DB, trf *models.EmployeeTravelRequest) error {
	trf.Status = models.StatusPending
	trf.Decision = models.StatusPending
	return db.Create(trf).Error
}

// CreateHodRequest inserts an HOD travel request, initial state pending.
func CreateHodRequest(db *gorm.DB, trf *models.HodTravelRequest) error {
	trf.Status = models.StatusPending
	trf.Decision = models.StatusPending
	return db.Create(trf).Error
}

// DecideEmployeeRequest applies an HOD decision to an employee request.
// The update is conditional on the record still being pending, so two
// concurrent decisions serialize to one winner; the loser and any attempt
// to re-decide a decided record get ErrInvalidTransition.
func DecideEmployeeRequest(db *gorm.DB, id uint, decision models.Status) (*models.EmployeeTravelRequest, error) {
	var trf models.EmployeeTravelRequest
	if err := db.First(&trf, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := trf.Status.CanTransition(decision); err != nil {
		return nil, ErrInvalidTransition
	}

	res := db.Model(&models.EmployeeTravelRequest{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(map[string]interface{}{"status": decision, "decision": decision})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrInvalidTransition
	}

	trf.Status = decision
	trf.Decision = decision
	return &trf, nil
}

// DecideHodRequest applies an admin decision to an HOD request. Same
// conditional-update semantics as DecideEmployeeRequest.
func DecideHodRequest(db *gorm.DB, id uint, decision models.Status) (*models.HodTravelRequest, error) {
	var trf models.HodTravelRequest
	if err := db.First(&trf, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := trf.Status.CanTransition(decision); err != nil {
		return nil, ErrInvalidTransition
	}

	res := db.Model(&models.HodTravelRequest{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(map[string]interface{}{"status": decision, "decision": decision})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrInvalidTransition
	}

	trf.Status = decision
	trf.Decision = decision
	return &trf, nil
}

// UpdateBookingUsage records distance and toll figures on an existing
// booking. Returns ErrNotFound when the id does not resolve.
func UpdateBookingUsage(db *gorm.DB, id uint, distanceTraveled, tollUsage string) (*models.DriverBooking, error) {
	var booking models.DriverBooking
	if err := db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	booking.DistanceTraveled = distanceTraveled
	booking.TollUsage = tollUsage
	if err := db.Save(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}
