package repository

// Schema creates the person and address_book tables. It is idempotent and is
// applied by cmd/migrate or, with AUTO_MIGRATE, at API start.
const Schema = `
CREATE TABLE IF NOT EXISTS person (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	email VARCHAR(100) NOT NULL,
	phone VARCHAR(15) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	CONSTRAINT person_email_key UNIQUE (email)
);
CREATE INDEX IF NOT EXISTS person_name_idx ON person (name);

CREATE TABLE IF NOT EXISTS address_book (
	id BIGSERIAL PRIMARY KEY,
	person_id BIGINT NOT NULL UNIQUE REFERENCES person (id) ON DELETE CASCADE,
	city VARCHAR(100) NOT NULL,
	country VARCHAR(100) NOT NULL,
	street VARCHAR(100) NOT NULL,
	postal VARCHAR(10) NOT NULL DEFAULT '',
	latitude DOUBLE PRECISION NOT NULL,
	longitude DOUBLE PRECISION NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS address_book_coordinates_idx ON address_book (latitude, longitude);
`
