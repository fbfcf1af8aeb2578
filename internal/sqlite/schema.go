package sqlite

const (
	createCountries = `CREATE TABLE IF NOT EXISTS countries (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    population INTEGER NOT NULL,
    area INTEGER NOT NULL,
    continent TEXT NOT NULL
);`

	selectCountries = `SELECT name, population, area, continent FROM countries ORDER BY position`

	deleteCountries = `DELETE FROM countries`

	insertCountry = `INSERT INTO countries (position, name, population, area, continent) VALUES (?, ?, ?, ?, ?)`
)
