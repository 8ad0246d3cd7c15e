package api

import (
	"context"
	"net/url"

	"github.com/workzen/workzen-cli/internal/hr"
)

// Directory exposes typed, read-mostly views over the generic verbs for the
// CRUD resources. Pages in the old frontend each owned this wiring; here it
// sits next to the client so every command shares one error path.
type Directory struct {
	client *Client
}

// NewDirectory creates a resource directory over the given client.
func NewDirectory(client *Client) *Directory {
	return &Directory{client: client}
}

func listInto[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	envelope, err := c.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := envelope.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// Users lists the company's users.
func (d *Directory) Users(ctx context.Context) ([]hr.User, error) {
	return listInto[hr.User](ctx, d.client, "/users")
}

// Departments lists departments.
func (d *Directory) Departments(ctx context.Context) ([]hr.Department, error) {
	return listInto[hr.Department](ctx, d.client, "/departments")
}

// Attendance lists attendance records, optionally filtered to a date
// (YYYY-MM-DD).
func (d *Directory) Attendance(ctx context.Context, date string) ([]hr.Attendance, error) {
	path := "/attendance"
	if date != "" {
		path += "?date=" + url.QueryEscape(date)
	}
	return listInto[hr.Attendance](ctx, d.client, path)
}

// CheckIn records the caller's check-in for today.
func (d *Directory) CheckIn(ctx context.Context) (*hr.Attendance, error) {
	envelope, err := d.client.Post(ctx, "/attendance/check-in", struct{}{})
	if err != nil {
		return nil, err
	}
	var record hr.Attendance
	if err := envelope.Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// CheckOut records the caller's check-out for today.
func (d *Directory) CheckOut(ctx context.Context) (*hr.Attendance, error) {
	envelope, err := d.client.Post(ctx, "/attendance/check-out", struct{}{})
	if err != nil {
		return nil, err
	}
	var record hr.Attendance
	if err := envelope.Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Leaves lists leave applications visible to the caller.
func (d *Directory) Leaves(ctx context.Context) ([]hr.Leave, error) {
	return listInto[hr.Leave](ctx, d.client, "/leaves")
}

// ApplyLeave files a leave application.
func (d *Directory) ApplyLeave(ctx context.Context, leave hr.Leave) (*hr.Leave, error) {
	envelope, err := d.client.Post(ctx, "/leaves", leave)
	if err != nil {
		return nil, err
	}
	var created hr.Leave
	if err := envelope.Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Payruns lists payroll runs.
func (d *Directory) Payruns(ctx context.Context) ([]hr.Payrun, error) {
	return listInto[hr.Payrun](ctx, d.client, "/payruns")
}

// SalaryStructure fetches the salary structure for a user.
func (d *Directory) SalaryStructure(ctx context.Context, userID string) (*hr.SalaryStructure, error) {
	envelope, err := d.client.Get(ctx, "/salary-structure?user_id="+url.QueryEscape(userID))
	if err != nil {
		return nil, err
	}
	var structure hr.SalaryStructure
	if err := envelope.Decode(&structure); err != nil {
		return nil, err
	}
	return &structure, nil
}

// Documents lists HR documents visible to the caller.
func (d *Directory) Documents(ctx context.Context) ([]hr.Document, error) {
	return listInto[hr.Document](ctx, d.client, "/documents")
}

// Companies lists registered companies. Platform-wide view; the backend
// only serves it to super-admins.
func (d *Directory) Companies(ctx context.Context) ([]hr.Company, error) {
	return listInto[hr.Company](ctx, d.client, "/companies")
}

// DashboardStats fetches the dashboard aggregates.
func (d *Directory) DashboardStats(ctx context.Context) (*hr.DashboardStats, error) {
	envelope, err := d.client.Get(ctx, "/dashboard/stats")
	if err != nil {
		return nil, err
	}
	var stats hr.DashboardStats
	if err := envelope.Decode(&stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
