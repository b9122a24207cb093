package archive

import (
	"crypto/sha1"
	"database/sql"
	"fmt"

	// SQLite driver
	_ "github.com/mattn/go-sqlite3"
)

// DB is an archive backed by a SQLite database.
type DB struct {
	db *sql.DB
}

func NewDB(file string) (*DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS data (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, bytes BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS image (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, data_id INTEGER NOT NULL, FOREIGN KEY(data_id) REFERENCES data(id))"); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{
		db: db,
	}, nil
}

func (db *DB) Close() error {
	return db.db.Close()
}

func addData(tx *sql.Tx, b []byte) (int64, error) {
	h := sha1.Sum(b)
	sha := fmt.Sprintf("%X", h[:])

	var id int64
	switch err := tx.QueryRow("SELECT id FROM data WHERE sha1 = ?", sha).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := tx.Exec("INSERT INTO data (sha1, bytes) VALUES (?, ?)", sha, b)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

func exists(q interface {
	QueryRow(string, ...interface{}) *sql.Row
}, name string) (bool, error) {
	var id int64
	switch err := q.QueryRow("SELECT id FROM image WHERE name = ?", name).Scan(&id); err {
	case sql.ErrNoRows:
		return false, nil
	case nil:
		return true, nil
	default:
		return false, err
	}
}

func (db *DB) Exists(name string) (bool, error) {
	return exists(db.db, name)
}

// Store saves b under name, which must not already exist.
func (db *DB) Store(name string, b []byte) error {
	tx, err := db.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	ok, err := exists(tx, name)
	if err != nil {
		return err
	}
	if ok {
		return fmt.Errorf("%w: %s", ErrExists, name)
	}

	data, err := addData(tx, b)
	if err != nil {
		return err
	}

	if _, err := tx.Exec("INSERT INTO image (name, data_id) VALUES (?, ?)", name, data); err != nil {
		return err
	}

	return tx.Commit()
}

// Get returns the bytes stored under name, or nil if there is nothing.
func (db *DB) Get(name string) ([]byte, error) {
	var b []byte
	switch err := db.db.QueryRow("SELECT d.bytes FROM image AS i JOIN data AS d ON i.data_id = d.id WHERE i.name = ?", name).Scan(&b); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return b, nil
	default:
		return nil, err
	}
}

func (db *DB) Names() ([]string, error) {
	rows, err := db.db.Query("SELECT name FROM image ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

func (db *DB) Blobs() (int, error) {
	var n int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM data").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
