package migrations

import (
	"github.com/yasinhessnawi1/BizCards_Backend/internal/constants"
)

// Timestamps of users and cards are stored as the preformatted strings the
// API returns, which keeps the DDL identical across drivers.

// createUsersTable creates the users table
func createUsersTable() Migration {
	return Migration{
		Name:        "create_users_table",
		Description: "Creates the users table",
		TableName:   constants.TableUsers,
		Statements: func(string) []string {
			return []string{`
				CREATE TABLE IF NOT EXISTS users (
					user_id VARCHAR(36) PRIMARY KEY,
					first_name VARCHAR(255) NOT NULL,
					middle_name VARCHAR(255) NOT NULL DEFAULT '',
					last_name VARCHAR(255) NOT NULL,
					is_business BOOLEAN NOT NULL DEFAULT FALSE,
					is_admin BOOLEAN NOT NULL DEFAULT FALSE,
					phone VARCHAR(16) NOT NULL,
					email VARCHAR(255) NOT NULL,
					password_hash VARCHAR(255) NOT NULL,
					salt VARCHAR(255) NOT NULL,
					state VARCHAR(255) NOT NULL DEFAULT '',
					country VARCHAR(255) NOT NULL,
					city VARCHAR(255) NOT NULL,
					street VARCHAR(255) NOT NULL,
					house_number INTEGER NOT NULL,
					zip VARCHAR(32) NOT NULL,
					image_url VARCHAR(2048) NOT NULL,
					image_alt VARCHAR(255) NOT NULL,
					created_at VARCHAR(64) NOT NULL,
					updated_at VARCHAR(64) NOT NULL,
					CONSTRAINT uq_users_email UNIQUE (email)
				)
			`}
		},
	}
}

// createCardsTable creates the cards table and its owner index
func createCardsTable() Migration {
	return Migration{
		Name:        "create_cards_table",
		Description: "Creates the cards table",
		TableName:   constants.TableCards,
		Statements: func(driver string) []string {
			// MySQL has no CREATE INDEX IF NOT EXISTS, so the index is declared inline there
			ownerIndex := ""
			if driver == constants.DriverMySQL {
				ownerIndex = ",\n\t\t\t\t\tINDEX idx_cards_user_id (user_id)"
			}

			stmts := []string{`
				CREATE TABLE IF NOT EXISTS cards (
					card_id VARCHAR(36) PRIMARY KEY,
					user_id VARCHAR(36) NOT NULL,
					title VARCHAR(255) NOT NULL,
					subtitle VARCHAR(255) NOT NULL,
					description TEXT NOT NULL,
					phone VARCHAR(16) NOT NULL,
					email VARCHAR(255) NOT NULL,
					web VARCHAR(2048) NOT NULL DEFAULT '',
					image_url VARCHAR(2048) NOT NULL,
					image_alt VARCHAR(255) NOT NULL,
					state VARCHAR(255) NOT NULL,
					country VARCHAR(255) NOT NULL,
					city VARCHAR(255) NOT NULL,
					street VARCHAR(255) NOT NULL,
					house_number INTEGER NOT NULL,
					zip VARCHAR(32) NOT NULL,
					biz_number INTEGER NOT NULL,
					version INTEGER NOT NULL DEFAULT 0,
					created_at VARCHAR(64) NOT NULL,
					updated_at VARCHAR(64) NOT NULL,
					CONSTRAINT uq_cards_email UNIQUE (email),
					CONSTRAINT uq_cards_biz_number UNIQUE (biz_number)` + ownerIndex + `
				)
			`}

			if driver != constants.DriverMySQL {
				stmts = append(stmts, `CREATE INDEX IF NOT EXISTS idx_cards_user_id ON cards (user_id)`)
			}
			return stmts
		},
	}
}

// createCardLikesTable creates the card_likes table
func createCardLikesTable() Migration {
	return Migration{
		Name:        "create_card_likes_table",
		Description: "Creates the card_likes table",
		TableName:   constants.TableCardLikes,
		Statements: func(string) []string {
			return []string{`
				CREATE TABLE IF NOT EXISTS card_likes (
					card_id VARCHAR(36) NOT NULL,
					user_id VARCHAR(36) NOT NULL,
					liked_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
					PRIMARY KEY (card_id, user_id)
				)
			`}
		},
	}
}
