// Package hr defines the WorkZen domain types exchanged with the backend.
package hr

// Role defines the user roles across the WorkZen HRMS system.
// The set is closed; authorization checks are set-membership checks,
// never hierarchy walks.
type Role string

const (
	RoleSuperAdmin Role = "superadmin" // Platform-level access
	RoleAdmin      Role = "admin"      // Company-level admin
	RoleHR         Role = "hr"         // Human Resource Officer
	RolePayroll    Role = "payroll"    // Payroll Officer
	RoleEmployee   Role = "employee"   // Regular employee
)

// Roles returns the closed role set.
func Roles() []Role {
	return []Role{RoleSuperAdmin, RoleAdmin, RoleHR, RolePayroll, RoleEmployee}
}

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	return r.In(Roles()...)
}

// In reports whether r is a member of the given set.
func (r Role) In(set ...Role) bool {
	for _, candidate := range set {
		if r == candidate {
			return true
		}
	}
	return false
}

// UserStatus is the account status.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// User represents a registered person in the HRMS system.
// Each user belongs to a company, except a bare super-admin.
type User struct {
	ID            string     `json:"id,omitempty"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Role          Role       `json:"role"`
	IsSuperAdmin  bool       `json:"is_super_admin,omitempty"`
	Designation   string     `json:"designation,omitempty"`
	DepartmentID  string     `json:"department_id,omitempty"`
	EmployeeCode  string     `json:"employee_code,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Status        UserStatus `json:"status"`
	EmailVerified bool       `json:"email_verified"`
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Company represents the tenant organization a user belongs to.
type Company struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Website    string `json:"website,omitempty"`
	Industry   string `json:"industry,omitempty"`
	IsApproved bool   `json:"is_approved,omitempty"`
	IsActive   bool   `json:"is_active"`
}

// LoginRequest is the POST /auth/login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the data payload of a successful login.
type LoginResponse struct {
	Token   string   `json:"token"`
	User    User     `json:"user"`
	Company *Company `json:"company,omitempty"`
}

// SignupRequest is the POST /auth/signup body. Signup registers a company
// together with its admin account; it never authenticates the caller.
type SignupRequest struct {
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Industry    string `json:"industry,omitempty"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Password    string `json:"password"`
}

// ChangePasswordRequest is the POST /auth/change-password body.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// Department is a company org unit.
type Department struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	HeadID      string `json:"head_id,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// Attendance is one day's attendance record for a user.
type Attendance struct {
	ID           string `json:"id,omitempty"`
	UserID       string `json:"user_id"`
	Date         string `json:"date"` // YYYY-MM-DD
	CheckInTime  string `json:"check_in_time,omitempty"`
	CheckOutTime string `json:"check_out_time,omitempty"`
	Status       string `json:"status,omitempty"`
	WorkHours    string `json:"work_hours,omitempty"`
}

// Leave is a leave application.
type Leave struct {
	ID        string `json:"id,omitempty"`
	UserID    string `json:"user_id"`
	Type      string `json:"type"`
	FromDate  string `json:"from_date"`
	ToDate    string `json:"to_date"`
	Reason    string `json:"reason,omitempty"`
	Status    string `json:"status"` // pending | approved | rejected
	Approver  string `json:"approver,omitempty"`
	DaysCount int    `json:"days_count,omitempty"`
}

// Payrun is one payroll execution for a period.
type Payrun struct {
	ID       string `json:"id,omitempty"`
	Period   string `json:"period"` // YYYY-MM
	Status   string `json:"status"`
	RunBy    string `json:"run_by,omitempty"`
	NetTotal string `json:"net_total,omitempty"`
}

// SalaryStructure is a user's salary component breakdown.
type SalaryStructure struct {
	ID         string `json:"id,omitempty"`
	UserID     string `json:"user_id"`
	Basic      string `json:"basic"`
	HRA        string `json:"hra,omitempty"`
	Allowances string `json:"allowances,omitempty"`
	Deductions string `json:"deductions,omitempty"`
	Net        string `json:"net,omitempty"`
}

// Document is an uploaded HR document reference.
type Document struct {
	ID         string `json:"id,omitempty"`
	UserID     string `json:"user_id,omitempty"`
	Name       string `json:"name"`
	Category   string `json:"category,omitempty"`
	URL        string `json:"url,omitempty"`
	UploadedAt string `json:"uploaded_at,omitempty"`
}

// DashboardStats is the aggregate card data shown on the dashboard.
type DashboardStats struct {
	TotalEmployees  int `json:"total_employees"`
	PresentToday    int `json:"present_today"`
	OnLeaveToday    int `json:"on_leave_today"`
	PendingLeaves   int `json:"pending_leaves"`
	OpenDepartments int `json:"open_departments,omitempty"`
}
