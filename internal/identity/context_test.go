package identity

import (
	"context"
	"testing"
)

func TestWithUserAndUserFromContext(t *testing.T) {
	ctx := WithUser(context.Background(), User{ID: "p1", Name: "Asha", Role: RolePatient})

	got, ok := UserFromContext(ctx)
	if !ok {
		t.Fatal("expected user to be present")
	}
	if got.ID != "p1" || got.Role != RolePatient {
		t.Fatalf("unexpected user %+v", got)
	}
}

func TestUserFromContext_EmptyOrMissing(t *testing.T) {
	if _, ok := UserFromContext(context.Background()); ok {
		t.Fatal("expected missing user to return false")
	}

	ctx := WithUser(context.Background(), User{})
	if _, ok := UserFromContext(ctx); ok {
		t.Fatal("expected empty user id to return false")
	}
}

func TestRoleValid(t *testing.T) {
	if !RolePatient.Valid() || !RoleDoctor.Valid() {
		t.Fatal("expected known roles to be valid")
	}
	if Role("admin").Valid() {
		t.Fatal("expected unknown role to be invalid")
	}
}
