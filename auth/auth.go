package auth

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"tanam/apperr"
	"tanam/db"
	"tanam/logger"
	"tanam/models"
	"tanam/rdx"
	"tanam/rewards"
	"tanam/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// Claims is the JWT payload. The jti lets logout revoke a single token.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// IssueToken signs a token for the user.
func IssueToken(userID string) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
}

// ParseToken validates the signature, expiry and revocation list.
func ParseToken(r *http.Request, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	if revoked, err := rdx.Conn.Exists(r.Context(), "revoked:"+claims.ID).Result(); err == nil && revoked > 0 {
		return nil, jwt.ErrTokenExpired
	}
	return claims, nil
}

// Register creates a user with a bcrypt-hashed password.
func Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Invalid JSON body"})
		return
	}
	if body.Username == "" || body.Password == "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "username and password are required"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     body.Username,
		Email:        body.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := db.UserCollection.InsertOne(r.Context(), user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithAppError(w, &apperr.ConflictError{Resource: "user", ID: body.Username})
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "userId": user.ID})
}

// Login verifies credentials, issues a token and logs a logged_in activity so
// the daily streak advances the way the reward system expects.
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Invalid JSON body"})
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(r.Context(), bson.M{"username": body.Username}).Decode(&user)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)) != nil {
		utils.RespondWithJSON(w, http.StatusUnauthorized, utils.M{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := IssueToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	if _, _, err := rewards.TrackActivity(r.Context(), user.ID, "logged_in", ""); err != nil {
		logger.L.Warn("login activity not recorded", zap.String("userId", user.ID), zap.Error(err))
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "token": token, "userId": user.ID})
}

// Logout revokes the presented token until its natural expiry.
func Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tokenString := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	claims, err := ParseToken(r, tokenString)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl > 0 {
		_ = rdx.Conn.Set(r.Context(), "revoked:"+claims.ID, "1", ttl).Err()
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}
