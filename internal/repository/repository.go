// Package repository implements persistence for users, cards and likes on
// top of database/sql. Statements are written with $n placeholders and
// rebound per driver by the pool.
package repository

import (
	"errors"
)

// ErrBizNumberTaken is returned by card inserts when the business number
// collides with an existing card. Callers draw a new number and retry.
var ErrBizNumberTaken = errors.New("business number already assigned")

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

const userColumns = `user_id, first_name, middle_name, last_name, is_business, is_admin,
        phone, email, password_hash, salt, state, country, city, street,
        house_number, zip, image_url, image_alt, created_at, updated_at`

const cardColumns = `card_id, user_id, title, subtitle, description, phone, email, web,
        image_url, image_alt, state, country, city, street, house_number, zip,
        biz_number, version, created_at, updated_at`

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
