package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/forumx/forumx/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// defaultBadge is the tier assigned at registration; no operation mutates it.
const defaultBadge = "Bronze"

var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserService struct {
	users     *mongo.Collection
	jwtSecret string
}

func NewUserService(db *mongo.Database, jwtSecret string) *UserService {
	return &UserService{users: db.Collection("users"), jwtSecret: jwtSecret}
}

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a hashed password.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateJWT signs a token carrying the user's email and badge.
func (s *UserService) GenerateJWT(email, badge string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"badge": badge,
		"exp":   time.Now().Add(4 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	PhotoURL string `json:"photoURL"`
}

// Register creates a new user. Email is the identity key; a second
// registration with the same email fails with ErrEmailTaken. The password
// is stored only as a bcrypt hash.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	err := s.users.FindOne(ctx, bson.M{"email": in.Email}).Err()
	if err == nil {
		return models.User{}, ErrEmailTaken
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashed, err := HashPassword(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      in.Name,
		Email:     in.Email,
		Password:  hashed,
		PhotoURL:  in.PhotoURL,
		Badge:     defaultBadge,
		CreatedAt: time.Now(),
	}
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("failed to register user: %w", err)
	}

	user.Password = ""
	return user, nil
}

// Login verifies the password against the stored hash and issues a JWT.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if !VerifyPassword(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return s.GenerateJWT(user.Email, user.Badge)
}

// GetByEmail fetches a single user by exact email match.
func (s *UserService) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}
