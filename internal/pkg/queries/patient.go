package queries

const (
	// Schema Queries
	CreatePatientsTableQuery = `
		CREATE TABLE IF NOT EXISTS patients (
			position INTEGER NOT NULL,
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			city TEXT NOT NULL,
			age INTEGER NOT NULL,
			gender TEXT NOT NULL,
			height DOUBLE PRECISION NOT NULL,
			weight DOUBLE PRECISION NOT NULL
		)
	`

	// Select Queries
	FindAllPatientsQuery = `
		SELECT id, name, city, age, gender, height, weight
		FROM patients
		ORDER BY position
	`

	// Insert Queries
	InsertPatientQuery = `
		INSERT INTO patients (
			position, id, name, city, age, gender, height, weight
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	// Delete Queries
	DeleteAllPatientsQuery = `
		DELETE FROM patients
	`
)
