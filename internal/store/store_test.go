package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"venue-booking-backend/internal/model"
)

// A helper function to create a mock database connection.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func newSqliteDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A plain :memory: database exists per connection; pin the pool to one so
	// every query sees the same database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.Booking{}))
	return db
}

func TestListDegradesToEmptyOnReadFailure(t *testing.T) {
	gormDB, mock := newMockDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "bookings"`).
		WillReturnError(assert.AnError)

	bookings := s.List(context.Background(), Filter{})

	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateListRoundTrip(t *testing.T) {
	s := NewGormStore(newSqliteDB(t))
	ctx := context.Background()

	later := model.Booking{
		Name: "Thandi", Email: "thandi@example.com", Event: "Board Room",
		Date: "2026-09-02", Time: "09:00", Reminder: model.Reminder1Day,
		People: 4, Duration: 2,
	}
	earlier := model.Booking{
		Name: "Sipho", Email: "sipho@example.com", Event: "Auditorium",
		Date: "2026-09-01", Time: "14:00", Reminder: model.Reminder1Hour,
		People: 1, Duration: 3,
	}
	sameDayLater := model.Booking{
		Name: "Lerato", Email: "lerato@example.com", Event: "PC Labs",
		Date: "2026-09-01", Time: "16:30", Reminder: model.Reminder1Hour,
		People: 8, Duration: 1,
	}

	require.NoError(t, s.Create(ctx, &later))
	require.NoError(t, s.Create(ctx, &earlier))
	require.NoError(t, s.Create(ctx, &sameDayLater))

	assert.NotEqual(t, uuid.Nil, later.Key, "create assigns a key")

	got := s.List(ctx, Filter{})
	require.Len(t, got, 3)
	assert.Equal(t, "Auditorium", got[0].Event)
	assert.Equal(t, "PC Labs", got[1].Event)
	assert.Equal(t, "Board Room", got[2].Event)

	// Every field survives the round trip.
	assert.Equal(t, earlier.Name, got[0].Name)
	assert.Equal(t, earlier.Email, got[0].Email)
	assert.Equal(t, earlier.Reminder, got[0].Reminder)
	assert.Equal(t, earlier.People, got[0].People)
	assert.Equal(t, earlier.Duration, got[0].Duration)
}

func TestListFilters(t *testing.T) {
	s := NewGormStore(newSqliteDB(t))
	ctx := context.Background()

	bookings := []model.Booking{
		{Name: "Thandi", Email: "t@example.com", Event: "Board Room", Date: "2026-09-01", Time: "09:00", Reminder: model.Reminder1Day, People: 1, Duration: 1},
		{Name: "Sipho", Email: "s@example.com", Event: "Makerspace", Date: "2026-09-02", Time: "10:00", Reminder: model.Reminder1Hour, People: 1, Duration: 1},
		{Name: "Boardman", Email: "b@example.com", Event: "Auditorium", Date: "2026-09-02", Time: "11:00", Reminder: model.Reminder1Hour, People: 1, Duration: 1},
	}
	for i := range bookings {
		require.NoError(t, s.Create(ctx, &bookings[i]))
	}

	t.Run("search matches event and name, case-insensitively", func(t *testing.T) {
		got := s.List(ctx, Filter{Search: "board"})
		require.Len(t, got, 2)
		assert.Equal(t, "Board Room", got[0].Event)
		assert.Equal(t, "Auditorium", got[1].Event) // matched on booker name
	})

	t.Run("date filter is exact", func(t *testing.T) {
		got := s.List(ctx, Filter{Date: "2026-09-02"})
		require.Len(t, got, 2)
		for _, b := range got {
			assert.Equal(t, "2026-09-02", b.Date)
		}
	})

	t.Run("combined filters", func(t *testing.T) {
		got := s.List(ctx, Filter{Search: "maker", Date: "2026-09-02"})
		require.Len(t, got, 1)
		assert.Equal(t, "Makerspace", got[0].Event)
	})

	t.Run("no match is an empty list", func(t *testing.T) {
		got := s.List(ctx, Filter{Search: "rooftop"})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestUpdateAndDeleteByKey(t *testing.T) {
	s := NewGormStore(newSqliteDB(t))
	ctx := context.Background()

	b := model.Booking{
		Name: "Thandi", Email: "t@example.com", Event: "Board Room",
		Date: "2026-09-01", Time: "09:00", Reminder: model.Reminder1Day,
		People: 1, Duration: 1,
	}
	require.NoError(t, s.Create(ctx, &b))

	b.Event = "Meeting Room"
	b.People = 6
	require.NoError(t, s.Update(ctx, &b))

	got, err := s.Get(ctx, b.Key)
	require.NoError(t, err)
	assert.Equal(t, "Meeting Room", got.Event)
	assert.Equal(t, 6, got.People)

	require.NoError(t, s.Delete(ctx, b.Key))
	_, err = s.Get(ctx, b.Key)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, s.Delete(ctx, b.Key), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, s.Update(ctx, &b), gorm.ErrRecordNotFound)

	missing := model.Booking{}
	assert.Error(t, s.Update(ctx, &missing), "update without a key is rejected")
}
