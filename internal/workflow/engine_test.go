package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"travel_desk/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm open error: %v", err)
	}
	return gdb, mock
}

func TestListBookingsForDriverFiltersByDriverAndWindow(t *testing.T) {
	gdb, mock := newMockDB(t)
	window := Today()

	rows := sqlmock.NewRows([]string{"id", "driver_id", "purpose"}).
		AddRow(1, "d1", "airport run")
	mock.ExpectQuery(`SELECT \* FROM "driver_bookings" WHERE .*driver_id = \$1 AND date >= \$2 AND date < \$3`).
		WithArgs("d1", window.From, window.To).
		WillReturnRows(rows)

	bookings, err := ListBookingsForDriver(gdb, "d1", window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bookings) != 1 || bookings[0].DriverID != "d1" {
		t.Fatalf("unexpected result: %+v", bookings)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListBookingsForDriverEmptyIsNotAnError(t *testing.T) {
	gdb, mock := newMockDB(t)
	window := Today()

	mock.ExpectQuery(`SELECT \* FROM "driver_bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "driver_id"}))

	bookings, err := ListBookingsForDriver(gdb, "d1", window)
	if err != nil {
		t.Fatalf("no matches must not be an error, got %v", err)
	}
	if len(bookings) != 0 {
		t.Fatalf("expected empty result, got %+v", bookings)
	}
}

func TestListReceivedRequestsFiltersPendingForHod(t *testing.T) {
	gdb, mock := newMockDB(t)
	window := Today()

	rows := sqlmock.NewRows([]string{"id", "employee_code", "hod_id", "status"}).
		AddRow(4, "e1", "h1", "pending")
	mock.ExpectQuery(`SELECT \* FROM "employee_travel_requests" WHERE .*hod_id = \$1 AND status = \$2 AND date_of_request >= \$3 AND date_of_request < \$4`).
		WithArgs("h1", models.StatusPending, window.From, window.To).
		WillReturnRows(rows)

	trfs, err := ListReceivedRequests(gdb, "h1", window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trfs) != 1 || trfs[0].Status != models.StatusPending {
		t.Fatalf("unexpected result: %+v", trfs)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateEmployeeRequestForcesPending(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "employee_travel_requests"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectCommit()

	trf := models.EmployeeTravelRequest{
		EmployeeCode:  "e1",
		HodID:         "h1",
		DateOfRequest: time.Now(),
		Status:        models.StatusApproved, // payload tries to sneak past the workflow
		Decision:      models.StatusApproved,
	}
	if err := CreateEmployeeRequest(gdb, &trf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trf.Status != models.StatusPending || trf.Decision != models.StatusPending {
		t.Fatalf("new request must start pending, got status=%s decision=%s", trf.Status, trf.Decision)
	}
	if trf.ID != 9 {
		t.Fatalf("generated id not returned, got %d", trf.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDecideEmployeeRequestSetsBothFields(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "employee_travel_requests"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "decision"}).
			AddRow(7, "pending", "pending"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "employee_travel_requests" SET .*id = \$\d+ AND status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	trf, err := DecideEmployeeRequest(gdb, 7, models.StatusApproved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trf.Status != models.StatusApproved || trf.Decision != models.StatusApproved {
		t.Fatalf("decision must mirror into both fields, got status=%s decision=%s", trf.Status, trf.Decision)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDecideEmployeeRequestAlreadyDecided(t *testing.T) {
	gdb, mock := newMockDB(t)

	// Record is already approved: no UPDATE may be issued.
	mock.ExpectQuery(`SELECT \* FROM "employee_travel_requests"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "decision"}).
			AddRow(7, "approved", "approved"))

	if _, err := DecideEmployeeRequest(gdb, 7, models.StatusRejected); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDecideEmployeeRequestLosesRace(t *testing.T) {
	gdb, mock := newMockDB(t)

	// The read sees pending, but a concurrent decision lands first and the
	// conditional update matches zero rows.
	mock.ExpectQuery(`SELECT \* FROM "employee_travel_requests"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "decision"}).
			AddRow(7, "pending", "pending"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "employee_travel_requests"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	if _, err := DecideEmployeeRequest(gdb, 7, models.StatusRejected); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for the race loser, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDecideEmployeeRequestNotFoundPerformsNoWrite(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "employee_travel_requests"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := DecideEmployeeRequest(gdb, 404, models.StatusApproved); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDecideHodRequestSetsBothFields(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "hod_travel_requests"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "decision"}).
			AddRow(3, "pending", "pending"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "hod_travel_requests"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	trf, err := DecideHodRequest(gdb, 3, models.StatusRejected)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trf.Status != models.StatusRejected || trf.Decision != models.StatusRejected {
		t.Fatalf("unexpected state: %+v", trf)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateBookingUsage(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "driver_bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "driver_id"}).AddRow(5, "d1"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "driver_bookings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	booking, err := UpdateBookingUsage(gdb, 5, "42", "120")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.DistanceTraveled != "42" || booking.TollUsage != "120" {
		t.Fatalf("usage fields not updated: %+v", booking)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateBookingUsageNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "driver_bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := UpdateBookingUsage(gdb, 404, "1", "1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
