// internal/workers/fit/rank-sizes/handler_test.go
package ranksizes

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"tryon-workers/internal/common/logger"
	"tryon-workers/internal/engine"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{
		CacheTTL: 30 * time.Minute,
		Timeout:  30 * time.Second,
	}
}

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	return db, mock
}

func setupRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func testAvatar() *engine.AvatarMeasurements {
	return &engine.AvatarMeasurements{
		HeightCm: 178,
		ChestCm:  104,
		WaistCm:  88,
		HipCm:    108,
	}
}

func testSizeCharts() []engine.GarmentSizeChart {
	return []engine.GarmentSizeChart{
		{SizeLabel: "S", SizeSystem: "EU", Category: "tops", ChestCm: 88, WaistCm: 72, HipCm: 92},
		{SizeLabel: "M", SizeSystem: "EU", Category: "tops", ChestCm: 96, WaistCm: 80, HipCm: 100},
		{SizeLabel: "L", SizeSystem: "EU", Category: "tops", ChestCm: 104, WaistCm: 88, HipCm: 108},
		{SizeLabel: "XL", SizeSystem: "EU", Category: "tops", ChestCm: 112, WaistCm: 96, HipCm: 116},
	}
}

func newHandler(t *testing.T, db *sql.DB, rdb *redis.Client) *Handler {
	eng := engine.New(engine.DefaultTunables())
	return NewHandler(createTestConfig(), eng, db, rdb, logger.NewTestLogger(t))
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_RanksProvidedCharts(t *testing.T) {
	db, _ := setupMockDB(t)
	defer db.Close()
	rdb, _ := setupRedis(t)

	handler := newHandler(t, db, rdb)

	input := &Input{
		UserID:             "user-123",
		ProductID:          "product-9",
		AvatarMeasurements: testAvatar(),
		SizeCharts:         testSizeCharts(),
	}

	output, err := handler.Execute(context.Background(), input)

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.Len(t, output.Recommendations, 4)
	assert.Equal(t, "L", output.BestSize)
	assert.Equal(t, "L", output.Recommendations[0].SizeLabel)
	assert.InDelta(t, 1.0, output.Recommendations[0].Confidence, 1e-9)

	// Descending confidence order
	for i := 1; i < len(output.Recommendations); i++ {
		assert.GreaterOrEqual(t,
			output.Recommendations[i-1].Confidence,
			output.Recommendations[i].Confidence)
	}
}

func TestHandler_Execute_FetchesChartsFromDB(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	rdb, _ := setupRedis(t)

	rows := sqlmock.NewRows([]string{"size_label", "size_system", "brand", "category", "chest_cm", "waist_cm", "hip_cm"}).
		AddRow("M", "EU", "acme", "tops", 96.0, 80.0, 100.0).
		AddRow("L", "EU", "acme", "tops", 104.0, 88.0, 108.0)

	mock.ExpectQuery("SELECT size_label").
		WithArgs("product-9").
		WillReturnRows(rows)

	handler := newHandler(t, db, rdb)

	input := &Input{
		ProductID:          "product-9",
		AvatarMeasurements: testAvatar(),
	}

	output, err := handler.Execute(context.Background(), input)

	assert.NoError(t, err)
	assert.Len(t, output.Recommendations, 2)
	assert.Equal(t, "L", output.BestSize)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_UsesCachedCharts(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	rdb, _ := setupRedis(t)

	data, _ := json.Marshal(testSizeCharts())
	assert.NoError(t, rdb.Set(context.Background(), "product:sizecharts:product-7", data, time.Minute).Err())

	handler := newHandler(t, db, rdb)

	input := &Input{
		ProductID:          "product-7",
		AvatarMeasurements: testAvatar(),
	}

	output, err := handler.Execute(context.Background(), input)

	assert.NoError(t, err)
	assert.Len(t, output.Recommendations, 4)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_NoChartsFound(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	rdb, _ := setupRedis(t)

	mock.ExpectQuery("SELECT size_label").
		WithArgs("product-empty").
		WillReturnRows(sqlmock.NewRows([]string{"size_label", "size_system", "brand", "category", "chest_cm", "waist_cm", "hip_cm"}))

	handler := newHandler(t, db, rdb)

	input := &Input{
		ProductID:          "product-empty",
		AvatarMeasurements: testAvatar(),
	}

	output, err := handler.Execute(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_NoProductAndNoCharts(t *testing.T) {
	db, _ := setupMockDB(t)
	defer db.Close()
	rdb, _ := setupRedis(t)

	handler := newHandler(t, db, rdb)

	output, err := handler.Execute(context.Background(), &Input{AvatarMeasurements: testAvatar()})

	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestHandler_Execute_RejectsInvalidChart(t *testing.T) {
	db, _ := setupMockDB(t)
	defer db.Close()
	rdb, _ := setupRedis(t)

	handler := newHandler(t, db, rdb)

	charts := testSizeCharts()
	charts[1].SizeLabel = ""

	input := &Input{
		AvatarMeasurements: testAvatar(),
		SizeCharts:         charts,
	}

	output, err := handler.Execute(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestHandler_Execute_MissingAvatarStillRanks(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	rdb, _ := setupRedis(t)

	mock.ExpectQuery("SELECT height_cm").
		WithArgs("missing-user").
		WillReturnError(sql.ErrNoRows)

	handler := newHandler(t, db, rdb)

	input := &Input{
		UserID:     "missing-user",
		SizeCharts: testSizeCharts(),
	}

	output, err := handler.Execute(context.Background(), input)

	assert.NoError(t, err)
	assert.Len(t, output.Recommendations, 4)
	// Every area missing on the avatar keeps the confidence floor
	for _, rec := range output.Recommendations {
		assert.Equal(t, 0.0, rec.Confidence)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
