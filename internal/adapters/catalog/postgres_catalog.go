package catalog

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"

	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/entities"
	"github.com/lifelinecare/hospitalfinder/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/lifelinecare/hospitalfinder/backend/pkg/errors"
)

// PostgresCatalog loads the region catalog from Postgres at startup.
// The directory is small and changes rarely, so it is read once into
// the same in-memory structure the file catalog uses; requests never
// touch the database.
type PostgresCatalog struct {
	*FileCatalog
}

// NewPostgresCatalog reads regions and hospitals from the database and
// builds the in-memory catalog.
func NewPostgresCatalog(ctx context.Context, client *postgres.Client, defaultRegion string) (*PostgresCatalog, error) {
	db := goqu.New("postgres", client.DB())

	regions, err := loadRegions(ctx, client, db)
	if err != nil {
		return nil, err
	}

	for i := range regions {
		hospitals, err := loadHospitals(ctx, client, db, regions[i].Name)
		if err != nil {
			return nil, err
		}
		regions[i].Hospitals = hospitals
	}

	inner, err := newCatalog(regions, defaultRegion)
	if err != nil {
		return nil, err
	}

	return &PostgresCatalog{FileCatalog: inner}, nil
}

func loadRegions(ctx context.Context, client *postgres.Client, db *goqu.Database) ([]entities.Region, error) {
	query, args, err := db.Select(
		"name", "lat_min", "lat_max", "lng_min", "lng_max",
	).From("regions").
		Order(goqu.I("priority").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build regions query", err)
	}

	rows, err := client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewConfigurationError("failed to load regions", err)
	}
	defer rows.Close()

	var regions []entities.Region
	for rows.Next() {
		var region entities.Region
		if err := rows.Scan(
			&region.Name,
			&region.BBox.LatMin,
			&region.BBox.LatMax,
			&region.BBox.LngMin,
			&region.BBox.LngMax,
		); err != nil {
			return nil, apperrors.NewConfigurationError("failed to scan region row", err)
		}
		regions = append(regions, region)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewConfigurationError("failed to iterate region rows", err)
	}

	return regions, nil
}

func loadHospitals(ctx context.Context, client *postgres.Client, db *goqu.Database, region string) ([]entities.HospitalRecord, error) {
	query, args, err := db.Select(
		"id", "name", "address", "phone", "distance_km", "rating",
		"emergency_capable", "open", "wait_time", "beds_available",
		"total_beds", "blood_units", "icu_available", "occupancy_rate",
		"doctor_availability", "blood_bank_stock", "specialties",
		"facilities", "estimated_arrival",
	).From("hospitals").
		Where(goqu.Ex{"region": region}).
		Order(goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build hospitals query", err)
	}

	rows, err := client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewConfigurationError("failed to load hospitals", err)
	}
	defer rows.Close()

	var hospitals []entities.HospitalRecord
	for rows.Next() {
		rec, err := scanHospital(rows)
		if err != nil {
			return nil, err
		}
		hospitals = append(hospitals, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewConfigurationError("failed to iterate hospital rows", err)
	}

	return hospitals, nil
}

func scanHospital(rows *sql.Rows) (entities.HospitalRecord, error) {
	var rec entities.HospitalRecord
	var phone, waitTime, bloodStock, eta sql.NullString
	var icuAvailable sql.NullInt64
	var occupancy, doctorAvail sql.NullFloat64

	err := rows.Scan(
		&rec.ID,
		&rec.Name,
		&rec.Address,
		&phone,
		&rec.DistanceValue,
		&rec.Rating,
		&rec.EmergencyCapable,
		&rec.Open,
		&waitTime,
		&rec.BedsAvailable,
		&rec.TotalBeds,
		&rec.BloodUnits,
		&icuAvailable,
		&occupancy,
		&doctorAvail,
		&bloodStock,
		pq.Array(&rec.Specialties),
		pq.Array(&rec.Facilities),
		&eta,
	)
	if err != nil {
		return rec, apperrors.NewConfigurationError("failed to scan hospital row", err)
	}

	rec.Phone = phone.String
	rec.WaitTime = waitTime.String
	rec.BloodBankStock = entities.BloodStock(bloodStock.String)
	rec.EstimatedArrival = eta.String
	if icuAvailable.Valid {
		icu := int(icuAvailable.Int64)
		rec.ICUAvailable = &icu
	}
	if occupancy.Valid {
		v := occupancy.Float64
		rec.OccupancyRate = &v
	}
	if doctorAvail.Valid {
		v := doctorAvail.Float64
		rec.DoctorAvail = &v
	}

	return rec, nil
}
