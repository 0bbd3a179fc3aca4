package db

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/brettboylen/reddit-simulator/models"
)

// timeLayout is fixed width so that created_at sorts chronologically as text
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Database archives generated comments; it never feeds the in-memory analytics
type Database struct {
	db    *sql.DB
	mutex sync.RWMutex
	log   *logrus.Logger
}

// NewDatabase creates a new SQLite database connection
func NewDatabase(dbPath string, log *logrus.Logger) (*Database, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	database := &Database{
		db:  db,
		log: log,
	}

	if err := database.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}

	log.WithField("path", dbPath).Info("Comment archive ready")
	return database, nil
}

// Close closes the database connection
func (d *Database) Close() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.db.Close()
}

// initTables creates the necessary tables if they don't exist
func (d *Database) initTables() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	query := `
	CREATE TABLE IF NOT EXISTS generated_comments (
		id TEXT PRIMARY KEY,
		author TEXT NOT NULL,
		text TEXT NOT NULL,
		constraint_level TEXT NOT NULL,
		upvotes INTEGER NOT NULL,
		word_count INTEGER NOT NULL,
		unique_word_count INTEGER NOT NULL,
		emoji_count INTEGER NOT NULL,
		character_count INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_generated_comments_created ON generated_comments(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_generated_comments_level ON generated_comments(constraint_level);
	`

	_, err := d.db.Exec(query)
	return err
}

// SaveComment appends a generated comment to the archive; a duplicate id is an error
func (d *Database) SaveComment(comment *models.GeneratedComment) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	createdAt := comment.Analysis.Timestamp
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `
	INSERT INTO generated_comments (
		id, author, text, constraint_level, upvotes, word_count,
		unique_word_count, emoji_count, character_count, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := d.db.Exec(
		query,
		comment.ID, comment.Author, comment.Text, string(comment.ConstraintLevel), comment.Upvotes,
		comment.Analysis.WordCount, comment.Analysis.UniqueWordCount,
		comment.Analysis.EmojiCount, comment.Analysis.CharacterCount,
		createdAt.UTC().Format(timeLayout),
	)

	if err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return nil
}

// RecentComments returns the newest archived comments, newest first
func (d *Database) RecentComments(limit int) ([]models.ArchivedComment, error) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	query := `
	SELECT id, author, text, constraint_level, upvotes, word_count,
		unique_word_count, emoji_count, character_count, created_at
	FROM generated_comments
	ORDER BY created_at DESC
	LIMIT ?
	`

	rows, err := d.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent comments: %w", err)
	}
	defer rows.Close()

	comments := make([]models.ArchivedComment, 0, limit)
	for rows.Next() {
		var comment models.ArchivedComment
		var level string
		var createdAt string

		err := rows.Scan(
			&comment.ID, &comment.Author, &comment.Text, &level, &comment.Upvotes,
			&comment.WordCount, &comment.UniqueWordCount, &comment.EmojiCount,
			&comment.CharacterCount, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}

		comment.ConstraintLevel = models.Mode(level)
		comment.CreatedAt, err = time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for comment %s: %w", comment.ID, err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return comments, nil
}

// CountByMode returns how many archived comments exist per constraint mode
func (d *Database) CountByMode() (map[models.Mode]int, error) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	query := `
	SELECT constraint_level, COUNT(*) as comment_count
	FROM generated_comments
	GROUP BY constraint_level
	`

	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query comment counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.Mode]int, len(models.Modes))
	for _, mode := range models.Modes {
		counts[mode] = 0
	}
	for rows.Next() {
		var level string
		var count int

		if err := rows.Scan(&level, &count); err != nil {
			return nil, fmt.Errorf("failed to scan comment count: %w", err)
		}

		counts[models.Mode(level)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return counts, nil
}
