package models

// Domain models mirroring the remote TadbeerX API payloads. Everything here is
// remote-owned; the console only holds transient copies.

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// AuthUser is the compact identity embedded in login/verify responses.
type AuthUser struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Worker lifecycle statuses.
const (
	WorkerAvailable = "available"
	WorkerHired     = "hired"
	WorkerInactive  = "inactive"
)

// Worker moderation statuses, independent of lifecycle status.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

type PersonalInfo struct {
	FirstName     string `json:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty"`
	Age           *int   `json:"age,omitempty"`
	NationalityID string `json:"nationalityId,omitempty"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	Email         string `json:"email,omitempty"`
}

type ProfessionalInfo struct {
	SkillIDs       []string `json:"skillIds,omitempty"`
	LanguageIDs    []string `json:"languageIds,omitempty"`
	Experience     *int     `json:"experience,omitempty"`
	AdditionalInfo string   `json:"additionalInfo,omitempty"`
}

// FieldVisibility holds the per-field booleans that control which parts of a
// profile are publicly displayed.
type FieldVisibility struct {
	PersonalInfo     PersonalVisibility     `json:"personalInfo"`
	ProfessionalInfo ProfessionalVisibility `json:"professionalInfo"`
}

type PersonalVisibility struct {
	FirstName   bool `json:"firstName"`
	LastName    bool `json:"lastName"`
	Age         bool `json:"age"`
	Nationality bool `json:"nationality"`
	Phone       bool `json:"phone"`
	Email       bool `json:"email"`
}

type ProfessionalVisibility struct {
	Skills         bool `json:"skills"`
	Languages      bool `json:"languages"`
	Experience     bool `json:"experience"`
	AdditionalInfo bool `json:"additionalInfo"`
}

type Worker struct {
	ID                     string           `json:"id"`
	PersonalInfo           PersonalInfo     `json:"personalInfo"`
	ProfessionalInfo       ProfessionalInfo `json:"professionalInfo"`
	FieldVisibility        FieldVisibility  `json:"fieldVisibility"`
	Status                 string           `json:"status"`
	ApprovalStatus         string           `json:"approvalStatus"`
	Featured               bool             `json:"featured"`
	ProfileCompletionScore int              `json:"profileCompletionScore"`
	ViewCount              int              `json:"viewCount"`
	ContactCount           int              `json:"contactCount"`
	CreatedAt              string           `json:"createdAt,omitempty"`
	UpdatedAt              string           `json:"updatedAt,omitempty"`
	CreatedBy              string           `json:"createdBy,omitempty"`
	UpdatedBy              string           `json:"updatedBy,omitempty"`
}

// Inquiry workflow statuses.
const (
	InquiryNew        = "new"
	InquiryInProgress = "in_progress"
	InquiryResponded  = "responded"
	InquiryClosed     = "closed"
	InquirySpam       = "spam"
)

type ClientInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CommunicationEntry struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	UserID    string `json:"userId"`
	Timestamp string `json:"timestamp"`
}

type Inquiry struct {
	ID                     string               `json:"id"`
	WorkerID               string               `json:"workerId"`
	ClientInfo             ClientInfo           `json:"clientInfo"`
	PreferredContactMethod string               `json:"preferredContactMethod"`
	Message                string               `json:"message,omitempty"`
	Urgency                string               `json:"urgency"`
	Status                 string               `json:"status"`
	AssignedTo             string               `json:"assignedTo,omitempty"`
	CommunicationLog       []CommunicationEntry `json:"communicationLog,omitempty"`
	CreatedAt              string               `json:"createdAt,omitempty"`
	UpdatedAt              string               `json:"updatedAt,omitempty"`
	Worker                 *Worker              `json:"worker,omitempty"`
	AssignedUser           *User                `json:"assignedUser,omitempty"`
}

type Nationality struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"displayOrder"`
	Active       bool   `json:"active"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

type Skill struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	DisplayOrder int    `json:"displayOrder"`
	Active       bool   `json:"active"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

type Language struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"displayOrder"`
	Active       bool   `json:"active"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

// ReferenceData is the combined lookup payload returned by GET /api/reference.
type ReferenceData struct {
	Nationalities []Nationality `json:"nationalities"`
	Skills        []Skill       `json:"skills"`
	Languages     []Language    `json:"languages"`
}

type AuditLog struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	TableName string `json:"tableName"`
	RecordID  string `json:"recordId,omitempty"`
	UserID    string `json:"userId,omitempty"`
	UserEmail string `json:"userEmail,omitempty"`
	Changes   string `json:"changes,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// Pagination is the envelope the remote API attaches to every list response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type WorkerStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Hired     int `json:"hired"`
	Inactive  int `json:"inactive"`
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Rejected  int `json:"rejected"`
	Featured  int `json:"featured"`
}

type InquiryStats struct {
	Total           int     `json:"total"`
	New             int     `json:"new"`
	InProgress      int     `json:"inProgress"`
	Responded       int     `json:"responded"`
	Closed          int     `json:"closed"`
	Spam            int     `json:"spam"`
	TodayCount      int     `json:"todayCount"`
	WeekCount       int     `json:"weekCount"`
	MonthCount      int     `json:"monthCount"`
	AvgResponseTime float64 `json:"avgResponseTime"`
}

type DashboardStats struct {
	Workers   WorkerStats  `json:"workers"`
	Inquiries InquiryStats `json:"inquiries"`
}

// MediaItem describes the occupant of one media slot.
type MediaItem struct {
	URL        string `json:"url"`
	Filename   string `json:"filename"`
	Size       int64  `json:"size"`
	MimeType   string `json:"mimeType"`
	UploadedAt string `json:"uploadedAt"`
	UploadedBy string `json:"uploadedBy"`
}

// MediaSlots holds the fixed set of named slots per worker. A nil entry means
// the slot is empty; uploading to an occupied slot replaces it.
type MediaSlots struct {
	Image1Postcard *MediaItem `json:"image1Postcard,omitempty"`
	Image2         *MediaItem `json:"image2,omitempty"`
	Image3         *MediaItem `json:"image3,omitempty"`
	VideoThumbnail *MediaItem `json:"videoThumbnail,omitempty"`
	Video1         *MediaItem `json:"video1,omitempty"`
}
