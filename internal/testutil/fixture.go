// Package testutil builds sqlite fixtures for package tests. The schema is
// owned by outside tooling in production; tests create it with plain DDL.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/d60-Lab/questionsdb/config"
	"github.com/d60-Lab/questionsdb/pkg/database"
)

var schema = []string{
	`CREATE TABLE users (
		id INTEGER PRIMARY KEY,
		fname TEXT NOT NULL,
		lname TEXT NOT NULL
	)`,
	`CREATE TABLE questions (
		id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		body TEXT NOT NULL,
		author_id INTEGER NOT NULL REFERENCES users(id)
	)`,
	`CREATE TABLE question_follows (
		id INTEGER PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id),
		question_id INTEGER NOT NULL REFERENCES questions(id)
	)`,
	`CREATE TABLE replies (
		id INTEGER PRIMARY KEY,
		body TEXT NOT NULL,
		question_id INTEGER NOT NULL REFERENCES questions(id),
		parent_id INTEGER REFERENCES replies(id),
		user_id INTEGER NOT NULL REFERENCES users(id)
	)`,
	`CREATE TABLE question_likes (
		id INTEGER PRIMARY KEY,
		question_id INTEGER NOT NULL REFERENCES questions(id),
		user_id INTEGER NOT NULL REFERENCES users(id)
	)`,
}

// NewDB opens a fresh in-memory store with the five tables and no rows.
func NewDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	db, err := database.Open(config.DatabaseConfig{Driver: database.DriverSQLite, DSN: ":memory:", LogLevel: "silent"})
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = database.Close(db) })
	for _, stmt := range schema {
		require.NoError(tb, db.Exec(stmt).Error)
	}
	return db
}

// Exec runs raw statements, failing the test on the first error.
func Exec(tb testing.TB, db *gorm.DB, stmts ...string) {
	tb.Helper()
	for _, stmt := range stmts {
		require.NoError(tb, db.Exec(stmt).Error, stmt)
	}
}

// Seed loads the shared fixture:
//
//	users      1 Ada Lovelace, 2 Alan Turing, 3 Grace Hopper, 4 Ada Lovelace, 5 Edsger Dijkstra
//	questions  10,11 by user 1; 12 by user 2; 13 by user 3
//	follows    q10: users 2,1   q11: user 3   q12: users 1,3,2
//	likes      q10: users 2,3   q11: user 1
//	replies    q10: 100 <- 101 <- 103, 100 <- 102, 104   q11: 110
//
// User 5 has authored, followed and liked nothing.
func Seed(tb testing.TB, db *gorm.DB) {
	tb.Helper()
	Exec(tb, db,
		`INSERT INTO users (id, fname, lname) VALUES
			(1, 'Ada', 'Lovelace'), (2, 'Alan', 'Turing'), (3, 'Grace', 'Hopper'),
			(4, 'Ada', 'Lovelace'), (5, 'Edsger', 'Dijkstra')`,
		`INSERT INTO questions (id, title, body, author_id) VALUES
			(10, 'Q1', 'body', 1), (11, 'Q2', 'second', 1),
			(12, 'Q3', 'third', 2), (13, 'Q4', 'lonely', 3)`,
		`INSERT INTO question_follows (id, user_id, question_id) VALUES
			(1, 2, 10), (2, 1, 10), (3, 3, 11), (4, 1, 12), (5, 3, 12), (6, 2, 12)`,
		`INSERT INTO question_likes (id, question_id, user_id) VALUES
			(1, 10, 2), (2, 10, 3), (3, 11, 1)`,
		`INSERT INTO replies (id, body, question_id, parent_id, user_id) VALUES
			(100, 'top', 10, NULL, 2),
			(101, 'child a', 10, 100, 1),
			(102, 'child b', 10, 100, 3),
			(103, 'grandchild', 10, 101, 2),
			(104, 'second top', 10, NULL, 3),
			(110, 'other question', 11, NULL, 1)`,
	)
}
