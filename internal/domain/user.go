package domain

// User roles
const (
	RoleUser       = "user"       // Regular back-office user
	RoleAdmin      = "admin"      // Administrator
	RoleInstructor = "instructor" // User with an instructor profile
	RoleVolunteer  = "voluntario" // User with a volunteer profile
)

// User Model
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`              // Primary key
	Username  string `gorm:"unique;not null" json:"username"`   // Unique username
	Password  string `gorm:"not null" json:"-"`                 // Hashed password, never serialized
	Role      string `gorm:"default:user" json:"role"`          // Role: user, admin, instructor or voluntario
	FullName  string `gorm:"size:150" json:"full_name"`         // Display name
	Email     string `gorm:"size:100;uniqueIndex" json:"email"` // Unique email, at most one user per address
	Phone     string `gorm:"size:30" json:"phone"`              // Contact phone
	AvatarURL string `gorm:"size:255" json:"avatar_url"`        // Profile image URL
}

// ProfileRole reports whether the user's role requires a linked domain profile
func (u *User) ProfileRole() bool {
	return u.Role == RoleInstructor || u.Role == RoleVolunteer
}
