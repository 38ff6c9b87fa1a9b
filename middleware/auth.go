package middleware

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

type contextKey string

// UserIDKey carries the verified Firebase UID through the request context.
const UserIDKey contextKey = "user_id"

// DevUserID is the owner every request runs as when auth verification is
// disabled (no Firebase credentials configured).
const DevUserID = "dev-user"

var firebaseAuth *auth.Client

// InitializeFirebase sets up the Firebase Admin SDK used to verify ID tokens.
// Credentials come from FIREBASE_SERVICE_ACCOUNT_JSON (raw JSON) or
// FIREBASE_SERVICE_ACCOUNT_BASE64. With neither present the middleware runs
// in dev mode and token verification is skipped entirely.
func InitializeFirebase(ctx context.Context) error {
	opt, err := credentialOption()
	if err != nil {
		return err
	}
	if opt == nil {
		log.Println("No Firebase credentials found, running with auth checks disabled")
		return nil
	}

	config := &firebase.Config{ProjectID: os.Getenv("FIREBASE_PROJECT_ID")}
	app, err := firebase.NewApp(ctx, config, opt)
	if err != nil {
		return fmt.Errorf("error initializing Firebase app: %w", err)
	}

	firebaseAuth, err = app.Auth(ctx)
	if err != nil {
		return fmt.Errorf("error getting Firebase Auth client: %w", err)
	}

	log.Println("Firebase Admin SDK initialized")
	return nil
}

func credentialOption() (option.ClientOption, error) {
	if raw := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); raw != "" {
		return option.WithCredentialsJSON([]byte(raw)), nil
	}
	if encoded := os.Getenv("FIREBASE_SERVICE_ACCOUNT_BASE64"); encoded != "" {
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("error decoding base64 Firebase credentials: %w", err)
		}
		return option.WithCredentialsJSON(decoded), nil
	}
	return nil, nil
}

// AuthMiddleware verifies the Firebase ID token in the Authorization header
// and stores the caller's UID in the request context. Downstream code only
// ever reads that owner id; everything else about identity stays with
// Firebase.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		if firebaseAuth == nil {
			ctx := context.WithValue(r.Context(), UserIDKey, DevUserID)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		idToken := extractToken(r.Header.Get("Authorization"))
		if idToken == "" {
			http.Error(w, "Unauthorized: no token provided", http.StatusUnauthorized)
			return
		}

		token, err := firebaseAuth.VerifyIDToken(r.Context(), idToken)
		if err != nil {
			log.Printf("Error verifying token: %v", err)
			http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, token.UID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractToken(authHeader string) string {
	parts := strings.Split(authHeader, "Bearer ")
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

// GetUserIDFromContext retrieves the verified user ID from the request
// context, or "" when the request never passed the auth middleware.
func GetUserIDFromContext(r *http.Request) string {
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		return ""
	}
	return userID
}
