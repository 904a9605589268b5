package account

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/parkconserve/park-management/internal/auth"
	"github.com/parkconserve/park-management/internal/donation"
	"github.com/parkconserve/park-management/internal/provider"
	"github.com/parkconserve/park-management/internal/tour"
)

type Repository interface {
	FindByID(role auth.Role, id int64) (*auth.Account, error)
	EmailExists(role auth.Role, email string, exceptID int64) (bool, error)
	Create(role auth.Role, account *auth.Account, roleLabel string) error
	UpdateProfile(role auth.Role, id int64, firstName, lastName, email string, parkName *string) error
	UpdatePasswordHash(role auth.Role, id int64, hash string) error
	UpdateAvatarURL(role auth.Role, id int64, url string) error
	Delete(role auth.Role, id int64) error
	ListByRole(role auth.Role) ([]*StaffMember, error)
	ListStaff() ([]*StaffMember, error)
}

// Visitor history sources, implemented by the domain repositories.
type DonationHistory interface {
	ListByEmail(email string) ([]*donation.Donation, error)
}

type TourHistory interface {
	ListByEmail(email string) ([]*tour.Booking, error)
}

type ApplicationHistory interface {
	ListByEmail(email string) ([]*provider.Application, error)
}

type Service struct {
	repo         Repository
	donations    DonationHistory
	tours        TourHistory
	applications ApplicationHistory
	uploadsDir   string
	bcryptCost   int
	logger       *slog.Logger
}

func NewService(
	repo Repository,
	donations DonationHistory,
	tours TourHistory,
	applications ApplicationHistory,
	uploadsDir string,
	bcryptCost int,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:         repo,
		donations:    donations,
		tours:        tours,
		applications: applications,
		uploadsDir:   uploadsDir,
		bcryptCost:   bcryptCost,
		logger:       logger,
	}
}

// ParkNameFor resolves the park an officer or staff member belongs to.
// The donation, tour, fund-request and budget services use this to
// scope reads and decisions.
func (s *Service) ParkNameFor(role string, userID int64) (string, error) {
	r := auth.Role(role)
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	account, err := s.repo.FindByID(r, userID)
	if err != nil {
		return "", ErrParkNotFound
	}
	if account.ParkName == nil || *account.ParkName == "" {
		return "", ErrParkNotFound
	}
	return *account.ParkName, nil
}

// ListParkStaff returns every park staff member.
func (s *Service) ListParkStaff() ([]*StaffMember, error) {
	return s.repo.ListByRole(auth.RoleParkStaff)
}

// AddParkStaff creates a park staff account with a hashed password.
func (s *Service) AddParkStaff(dto CreateParkStaffDTO) (*auth.Account, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.EmailExists(auth.RoleParkStaff, dto.Email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailInUse
	}

	hash, err := auth.HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	park := dto.Park
	account := &auth.Account{
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Email:        dto.Email,
		PasswordHash: hash,
		ParkName:     &park,
	}
	if err := s.repo.Create(auth.RoleParkStaff, account, "park-staff"); err != nil {
		s.logger.Error("failed to add park staff", "error", err)
		return nil, err
	}

	s.logger.Info("park staff added", "staff_id", account.ID, "park", park)
	return account, nil
}

// UpdateParkStaff rewrites name, email and park of a staff member.
func (s *Service) UpdateParkStaff(staffID int64, dto UpdateStaffDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}
	if dto.Park == "" {
		return ErrParkRequired
	}

	if _, err := s.repo.FindByID(auth.RoleParkStaff, staffID); err != nil {
		return ErrStaffNotFound
	}

	inUse, err := s.repo.EmailExists(auth.RoleParkStaff, dto.Email, staffID)
	if err != nil {
		return err
	}
	if inUse {
		return ErrEmailInUse
	}

	park := dto.Park
	return s.repo.UpdateProfile(auth.RoleParkStaff, staffID, dto.FirstName, dto.LastName, dto.Email, &park)
}

// SetStaffPassword replaces a staff member's password hash.
func (s *Service) SetStaffPassword(role auth.Role, staffID int64, password string) error {
	if password == "" {
		return ErrStaffNotFound
	}
	if _, err := s.repo.FindByID(role, staffID); err != nil {
		return ErrStaffNotFound
	}
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePasswordHash(role, staffID, hash)
}

// AddStaff creates a staff account in the table matching the role.
func (s *Service) AddStaff(dto CreateStaffDTO) (*auth.Account, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	role := roleFromLabel(dto.Role)
	if !IsStaffRole(role) {
		return nil, ErrInvalidRole
	}
	if RoleRequiresPark(role) && dto.ParkName == "" {
		return nil, ErrParkRequired
	}

	// Emails must be unique across every staff table, not just the
	// target one, because the shared login searches them in order.
	for _, r := range StaffRoles {
		exists, err := s.repo.EmailExists(r, dto.Email, 0)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailInUse
		}
	}

	hash, err := auth.HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	account := &auth.Account{
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Email:        dto.Email,
		PasswordHash: hash,
	}
	if dto.ParkName != "" {
		park := dto.ParkName
		account.ParkName = &park
	}

	if err := s.repo.Create(role, account, dto.Role); err != nil {
		s.logger.Error("failed to add staff", "error", err, "role", dto.Role)
		return nil, err
	}

	s.logger.Info("staff member added", "staff_id", account.ID, "role", dto.Role)
	return account, nil
}

// ListStaff returns members of every staff role, newest first.
func (s *Service) ListStaff() ([]*StaffMember, error) {
	return s.repo.ListStaff()
}

// UpdateStaff rewrites a staff member in the table matching the role and
// optionally resets the password.
func (s *Service) UpdateStaff(roleLabel string, staffID int64, dto UpdateStaffDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	role := roleFromLabel(roleLabel)
	if !IsStaffRole(role) {
		return ErrInvalidRole
	}
	if role == auth.RoleParkStaff && dto.Park == "" {
		return ErrParkRequired
	}

	if _, err := s.repo.FindByID(role, staffID); err != nil {
		return ErrStaffNotFound
	}

	for _, r := range StaffRoles {
		exceptID := int64(0)
		if r == role {
			exceptID = staffID
		}
		inUse, err := s.repo.EmailExists(r, dto.Email, exceptID)
		if err != nil {
			return err
		}
		if inUse {
			return ErrEmailInUse
		}
	}

	var park *string
	if dto.Park != "" {
		p := dto.Park
		park = &p
	}
	if err := s.repo.UpdateProfile(role, staffID, dto.FirstName, dto.LastName, dto.Email, park); err != nil {
		return err
	}

	if dto.Password != "" {
		hash, err := auth.HashPassword(dto.Password, s.bcryptCost)
		if err != nil {
			return err
		}
		if err := s.repo.UpdatePasswordHash(role, staffID, hash); err != nil {
			return err
		}
	}
	return nil
}

// DeleteStaff removes a staff member from the table matching the role.
func (s *Service) DeleteStaff(roleLabel string, staffID int64) error {
	role := roleFromLabel(roleLabel)
	if !IsStaffRole(role) {
		return ErrInvalidRole
	}
	if _, err := s.repo.FindByID(role, staffID); err != nil {
		return ErrStaffNotFound
	}
	return s.repo.Delete(role, staffID)
}

// Profile returns the account behind the session.
func (s *Service) Profile(role auth.Role, userID int64) (*ProfileResponse, error) {
	account, err := s.repo.FindByID(role, userID)
	if err != nil {
		return nil, err
	}
	resp := &ProfileResponse{
		ID:        fmt.Sprintf("%d", account.ID),
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Email:     account.Email,
		Role:      string(role),
		ParkName:  account.ParkName,
	}
	if account.AvatarURL != nil {
		resp.AvatarURL = *account.AvatarURL
	}
	return resp, nil
}

// UpdateProfile changes name and email on the caller's own account.
func (s *Service) UpdateProfile(role auth.Role, userID int64, dto UpdateProfileDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(role, userID); err != nil {
		return err
	}

	inUse, err := s.repo.EmailExists(role, dto.Email, userID)
	if err != nil {
		return err
	}
	if inUse {
		return ErrEmailInUse
	}

	return s.repo.UpdateProfile(role, userID, dto.FirstName, dto.LastName, dto.Email, nil)
}

// ChangePassword verifies the current password and stores a new hash.
func (s *Service) ChangePassword(role auth.Role, userID int64, dto ChangePasswordDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	account, err := s.repo.FindByID(role, userID)
	if err != nil {
		return err
	}

	ok, _ := auth.VerifyPassword(account.PasswordHash, dto.CurrentPassword)
	if !ok {
		return ErrIncorrectPassword
	}

	hash, err := auth.HashPassword(dto.NewPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePasswordHash(role, userID, hash)
}

// SaveAvatar stores the uploaded image and records its public URL.
func (s *Service) SaveAvatar(role auth.Role, userID int64, fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", ErrAvatarMissing
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(s.uploadsDir, 0o755); err != nil {
		return "", err
	}

	ext := filepath.Ext(fh.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	name := fmt.Sprintf("avatar_%d_%s%s", userID, time.Now().Format("20060102150405"), ext)
	dstPath := filepath.Join(s.uploadsDir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	url := "/uploads/" + name
	if err := s.repo.UpdateAvatarURL(role, userID, url); err != nil {
		return "", err
	}

	s.logger.Info("avatar updated", "role", role, "user_id", userID)
	return url, nil
}

// DeleteAccount removes the caller's own account.
func (s *Service) DeleteAccount(role auth.Role, userID int64) error {
	if err := s.repo.Delete(role, userID); err != nil {
		s.logger.Error("failed to delete account", "error", err, "role", role, "user_id", userID)
		return err
	}
	s.logger.Info("account deleted", "role", role, "user_id", userID)
	return nil
}

// VisitorUpdateProfile changes the visitor's details, optionally
// rotating the password after verifying the current one.
func (s *Service) VisitorUpdateProfile(visitorID int64, dto UpdateProfileDTO) (bool, error) {
	if err := dto.Validate(); err != nil {
		return false, err
	}

	account, err := s.repo.FindByID(auth.RoleVisitor, visitorID)
	if err != nil {
		return false, err
	}

	inUse, err := s.repo.EmailExists(auth.RoleVisitor, dto.Email, visitorID)
	if err != nil {
		return false, err
	}
	if inUse {
		return false, ErrEmailInUse
	}

	if dto.WantsPasswordChange() {
		ok, _ := auth.VerifyPassword(account.PasswordHash, dto.CurrentPassword)
		if !ok {
			return false, ErrIncorrectPassword
		}
		hash, err := auth.HashPassword(dto.NewPassword, s.bcryptCost)
		if err != nil {
			return false, err
		}
		if err := s.repo.UpdatePasswordHash(auth.RoleVisitor, visitorID, hash); err != nil {
			return false, err
		}
	}

	if err := s.repo.UpdateProfile(auth.RoleVisitor, visitorID, dto.FirstName, dto.LastName, dto.Email, nil); err != nil {
		return false, err
	}
	return dto.WantsPasswordChange(), nil
}

// VisitorData gathers the visitor's donations, tour bookings and
// service applications, matched by account email.
func (s *Service) VisitorData(visitorID int64) (*VisitorData, error) {
	account, err := s.repo.FindByID(auth.RoleVisitor, visitorID)
	if err != nil {
		return nil, err
	}

	donations, err := s.donations.ListByEmail(account.Email)
	if err != nil {
		return nil, err
	}
	tours, err := s.tours.ListByEmail(account.Email)
	if err != nil {
		return nil, err
	}
	applications, err := s.applications.ListByEmail(account.Email)
	if err != nil {
		return nil, err
	}

	return &VisitorData{
		Donations: donations,
		Tours:     tours,
		Services:  applications,
	}, nil
}

type VisitorData struct {
	Donations []*donation.Donation    `json:"donations"`
	Tours     []*tour.Booking         `json:"tours"`
	Services  []*provider.Application `json:"services"`
}

// roleFromLabel maps the wire labels used by the admin UI onto the
// role enum. "park-staff" is the historical spelling.
func roleFromLabel(label string) auth.Role {
	switch label {
	case "park-staff", "parkstaff":
		return auth.RoleParkStaff
	case "auditor":
		return auth.RoleAuditor
	case "government":
		return auth.RoleGovernment
	case "finance":
		return auth.RoleFinance
	}
	return auth.Role(label)
}
