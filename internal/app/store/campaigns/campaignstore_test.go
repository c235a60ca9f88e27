package campaignstore_test

import (
	"sync"
	"testing"
	"time"

	campaignstore "github.com/KarthikBalaji-007/FundRise-Backend/internal/app/store/campaigns"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/app/system/paging"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/domain/models"
	"github.com/KarthikBalaji-007/FundRise-Backend/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func newCampaign(creator primitive.ObjectID, title string) models.Campaign {
	return models.Campaign{
		CreatorID:   creator,
		Title:       title,
		Description: "Helping with medical bills.",
		Category:    "medical",
		GoalAmount:  50000,
		Deadline:    time.Now().UTC().AddDate(0, 0, 30),
	}
}

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := campaignstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, newCampaign(primitive.NewObjectID(), "Help Ravi Walk Again"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Slug != "help-ravi-walk-again" {
		t.Errorf("Slug: got %q, want %q", created.Slug, "help-ravi-walk-again")
	}
	if created.Status != models.CampaignStatusPending {
		t.Errorf("Status: got %q, want %q", created.Status, models.CampaignStatusPending)
	}
	if created.Currency != models.DefaultCurrency {
		t.Errorf("Currency: got %q, want %q", created.Currency, models.DefaultCurrency)
	}
	if created.CurrentAmount != 0 || created.DonorCount != 0 {
		t.Error("expected fresh counters")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestStore_Create_SlugCollision(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := campaignstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	creator := primitive.NewObjectID()
	first, err := store.Create(ctx, newCampaign(creator, "Flood Relief"))
	if err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	second, err := store.Create(ctx, newCampaign(creator, "Flood Relief"))
	if err != nil {
		t.Fatalf("second Create failed: %v", err)
	}

	if first.Slug != "flood-relief" {
		t.Errorf("first slug: got %q", first.Slug)
	}
	if second.Slug != "flood-relief-1" {
		t.Errorf("second slug: got %q, want %q", second.Slug, "flood-relief-1")
	}
}

func TestStore_GetBySlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := campaignstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, newCampaign(primitive.NewObjectID(), "School Library Fund"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.GetBySlug(ctx, created.Slug)
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("got campaign %s, want %s", got.ID.Hex(), created.ID.Hex())
	}

	if _, err := store.GetBySlug(ctx, "no-such-slug"); err != mongo.ErrNoDocuments {
		t.Errorf("missing slug: got err %v, want ErrNoDocuments", err)
	}
}

func TestStore_UpdateFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := campaignstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, newCampaign(primitive.NewObjectID(), "Old Title"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	newTitle := "Brand New Title"
	newGoal := 75000.0
	err = store.UpdateFields(ctx, created.ID, campaignstore.Update{
		Title:      &newTitle,
		GoalAmount: &newGoal,
	})
	if err != nil {
		t.Fatalf("UpdateFields failed: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != newTitle {
		t.Errorf("Title: got %q, want %q", got.Title, newTitle)
	}
	if got.Slug != "brand-new-title" {
		t.Errorf("Slug: got %q, want %q", got.Slug, "brand-new-title")
	}
	if got.GoalAmount != newGoal {
		t.Errorf("GoalAmount: got %v, want %v", got.GoalAmount, newGoal)
	}
	if got.Description != created.Description {
		t.Error("untouched field was modified")
	}
	if !got.UpdatedAt.After(created.UpdatedAt) {
		t.Error("UpdatedAt not refreshed")
	}
}

func TestStore_UpdateFields_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := campaignstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	desc := "whatever"
	err := store.UpdateFields(ctx, primitive.NewObjectID(), campaignstore.Update{Description: &desc})
	if err != mongo.ErrNoDocuments {
		t.Errorf("got err %v, want ErrNoDocuments", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := campaignstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, newCampaign(primitive.NewObjectID(), "To Be Deleted"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.GetByID(ctx, created.ID); err != mongo.ErrNoDocuments {
		t.Errorf("after delete: got err %v, want ErrNoDocuments", err)
	}
	if err := store.Delete(ctx, created.ID); err != mongo.ErrNoDocuments {
		t.Errorf("double delete: got err %v, want ErrNoDocuments", err)
	}
}

func TestStore_IncViewCount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := campaignstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, newCampaign(primitive.NewObjectID(), "Viewed Campaign"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	for want := int64(1); want <= 3; want++ {
		got, err := store.IncViewCount(ctx, created.ID)
		if err != nil {
			t.Fatalf("IncViewCount failed: %v", err)
		}
		if got != want {
			t.Errorf("view count: got %d, want %d", got, want)
		}
	}
}

func TestStore_ApproveReject(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := campaignstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := primitive.NewObjectID()

	pending, err := store.Create(ctx, newCampaign(primitive.NewObjectID(), "Pending One"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.Approve(ctx, pending.ID, admin); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	got, err := store.GetByID(ctx, pending.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != models.CampaignStatusActive {
		t.Errorf("Status: got %q, want active", got.Status)
	}
	if !got.IsVerified {
		t.Error("expected IsVerified")
	}
	if got.ApprovedBy == nil || *got.ApprovedBy != admin {
		t.Error("ApprovedBy not recorded")
	}
	if got.ApprovedAt == nil || got.ApprovedAt.IsZero() {
		t.Error("ApprovedAt not recorded")
	}

	// A second approval matches nothing: the campaign is no longer pending.
	if err := store.Approve(ctx, pending.ID, admin); err != mongo.ErrNoDocuments {
		t.Errorf("double approve: got err %v, want ErrNoDocuments", err)
	}

	other, err := store.Create(ctx, newCampaign(primitive.NewObjectID(), "Pending Two"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.Reject(ctx, other.ID, ""); err != nil {
		t.Fatalf("Reject failed: %v", err)
	}
	got, err = store.GetByID(ctx, other.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != models.CampaignStatusRejected {
		t.Errorf("Status: got %q, want rejected", got.Status)
	}
	if got.RejectionReason != models.DefaultRejectionReason {
		t.Errorf("RejectionReason: got %q, want default", got.RejectionReason)
	}

	// Rejecting again overwrites the recorded reason.
	if err := store.Reject(ctx, other.ID, "Duplicate of an existing campaign"); err != nil {
		t.Fatalf("second Reject failed: %v", err)
	}
	got, err = store.GetByID(ctx, other.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.RejectionReason != "Duplicate of an existing campaign" {
		t.Errorf("RejectionReason after overwrite: got %q", got.RejectionReason)
	}

	// Rejection is not limited to pending campaigns: an approved one can
	// still be taken down.
	if err := store.Reject(ctx, pending.ID, "Reported for misuse"); err != nil {
		t.Fatalf("Reject of active campaign failed: %v", err)
	}
	got, err = store.GetByID(ctx, pending.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != models.CampaignStatusRejected {
		t.Errorf("Status: got %q, want rejected", got.Status)
	}
	if got.RejectionReason != "Reported for misuse" {
		t.Errorf("RejectionReason: got %q", got.RejectionReason)
	}

	if err := store.Reject(ctx, primitive.NewObjectID(), "x"); err != mongo.ErrNoDocuments {
		t.Errorf("Reject of missing campaign: got err %v, want ErrNoDocuments", err)
	}
}

func TestStore_ApplyDonation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := campaignstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, newCampaign(primitive.NewObjectID(), "Funded Campaign"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.Approve(ctx, created.ID, primitive.NewObjectID()); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	if err := store.ApplyDonation(ctx, created.ID, 500); err != nil {
		t.Fatalf("ApplyDonation failed: %v", err)
	}
	if err := store.ApplyDonation(ctx, created.ID, 250); err != nil {
		t.Fatalf("ApplyDonation failed: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.CurrentAmount != 750 {
		t.Errorf("CurrentAmount: got %v, want 750", got.CurrentAmount)
	}
	if got.DonorCount != 2 {
		t.Errorf("DonorCount: got %d, want 2", got.DonorCount)
	}
}

func TestStore_ApplyDonation_NotActive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := campaignstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, newCampaign(primitive.NewObjectID(), "Still Pending"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.ApplyDonation(ctx, created.ID, 100); err != mongo.ErrNoDocuments {
		t.Errorf("got err %v, want ErrNoDocuments", err)
	}
}

func TestStore_ApplyDonation_Concurrent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := campaignstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, newCampaign(primitive.NewObjectID(), "Busy Campaign"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.Approve(ctx, created.ID, primitive.NewObjectID()); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	const donors = 20
	errs := make(chan error, donors)
	var wg sync.WaitGroup
	for i := 0; i < donors; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.ApplyDonation(ctx, created.ID, 10)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("ApplyDonation failed: %v", err)
		}
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.CurrentAmount != donors*10 {
		t.Errorf("CurrentAmount: got %v, want %d", got.CurrentAmount, donors*10)
	}
	if got.DonorCount != donors {
		t.Errorf("DonorCount: got %d, want %d", got.DonorCount, donors)
	}
}

func TestStore_SetOutcome(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := campaignstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, newCampaign(primitive.NewObjectID(), "Soon Finished"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.Approve(ctx, created.ID, primitive.NewObjectID()); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	changed, err := store.SetOutcome(ctx, created.ID, models.CampaignStatusCompleted)
	if err != nil {
		t.Fatalf("SetOutcome failed: %v", err)
	}
	if !changed {
		t.Error("expected first SetOutcome to change the document")
	}

	changed, err = store.SetOutcome(ctx, created.ID, models.CampaignStatusFailed)
	if err != nil {
		t.Fatalf("second SetOutcome failed: %v", err)
	}
	if changed {
		t.Error("expected second SetOutcome to be a no-op")
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != models.CampaignStatusCompleted {
		t.Errorf("Status: got %q, want completed", got.Status)
	}
}

func TestStore_ListAndCount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := campaignstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	creator := primitive.NewObjectID()
	a := fixtures.CreateCampaign(ctx, creator, "Medical Help for Asha", models.CampaignStatusActive)
	fixtures.CreateCampaign(ctx, creator, "New School Building", models.CampaignStatusActive)
	fixtures.CreateCampaign(ctx, creator, "Hidden Draft", models.CampaignStatusPending)

	q := campaignstore.ListQuery{
		Status: models.CampaignStatusActive,
		Page:   paging.Page{Number: 1, Limit: 12},
	}
	got, err := store.List(ctx, q)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List returned %d campaigns, want 2", len(got))
	}

	total, err := store.Count(ctx, q)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if total != 2 {
		t.Errorf("Count: got %d, want 2", total)
	}

	q.Search = "medical"
	got, err = store.List(ctx, q)
	if err != nil {
		t.Fatalf("List with search failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != a.ID {
		t.Errorf("search returned wrong campaigns: %v", got)
	}
}

func TestStore_List_Sorts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := campaignstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	creator := primitive.NewObjectID()
	first := fixtures.CreateCampaign(ctx, creator, "First", models.CampaignStatusActive)
	second := fixtures.CreateCampaign(ctx, creator, "Second", models.CampaignStatusActive)

	// Make "first" the most viewed and give it the nearest deadline.
	if _, err := store.IncViewCount(ctx, first.ID); err != nil {
		t.Fatalf("IncViewCount failed: %v", err)
	}
	err := store.UpdateFields(ctx, first.ID, campaignstore.Update{
		Deadline: timePtr(time.Now().UTC().AddDate(0, 0, 1)),
	})
	if err != nil {
		t.Fatalf("UpdateFields failed: %v", err)
	}

	page := paging.Page{Number: 1, Limit: 12}

	got, err := store.List(ctx, campaignstore.ListQuery{Sort: campaignstore.SortTrending, Page: page})
	if err != nil {
		t.Fatalf("List trending failed: %v", err)
	}
	if got[0].ID != first.ID {
		t.Error("trending sort did not put most-viewed first")
	}

	got, err = store.List(ctx, campaignstore.ListQuery{Sort: campaignstore.SortEndingSoon, Page: page})
	if err != nil {
		t.Fatalf("List ending-soon failed: %v", err)
	}
	if got[0].ID != first.ID {
		t.Error("ending-soon sort did not put nearest deadline first")
	}

	got, err = store.List(ctx, campaignstore.ListQuery{Sort: campaignstore.SortNewest, Page: page})
	if err != nil {
		t.Fatalf("List newest failed: %v", err)
	}
	if got[0].ID != second.ID {
		t.Error("newest sort did not put latest creation first")
	}
}

func TestStore_ListPending(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := campaignstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	older, err := store.Create(ctx, newCampaign(primitive.NewObjectID(), "Submitted First"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	newer, err := store.Create(ctx, newCampaign(primitive.NewObjectID(), "Submitted Second"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, total, err := store.ListPending(ctx, paging.Page{Number: 1, Limit: 12})
	if err != nil {
		t.Fatalf("ListPending failed: %v", err)
	}
	if total != 2 || len(got) != 2 {
		t.Fatalf("got %d campaigns (total %d), want 2", len(got), total)
	}
	if got[0].ID != newer.ID || got[1].ID != older.ID {
		t.Error("pending queue is not newest first")
	}
}

func TestStore_FindOutcomeCandidates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := campaignstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	creator := primitive.NewObjectID()
	now := time.Now().UTC()

	funded := fixtures.CreateCampaign(ctx, creator, "Goal Reached", models.CampaignStatusActive)
	fixtures.CreateDonation(ctx, funded.ID, primitive.NewObjectID(), funded.GoalAmount)

	expired := fixtures.CreateCampaign(ctx, creator, "Past Deadline", models.CampaignStatusActive)
	err := store.UpdateFields(ctx, expired.ID, campaignstore.Update{
		Deadline: timePtr(now.AddDate(0, 0, -1)),
	})
	if err != nil {
		t.Fatalf("UpdateFields failed: %v", err)
	}

	fixtures.CreateCampaign(ctx, creator, "Still Running", models.CampaignStatusActive)

	due, err := store.FindOutcomeCandidates(ctx, now)
	if err != nil {
		t.Fatalf("FindOutcomeCandidates failed: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("got %d candidates, want 2", len(due))
	}
	ids := map[primitive.ObjectID]bool{due[0].ID: true, due[1].ID: true}
	if !ids[funded.ID] || !ids[expired.ID] {
		t.Error("candidates missing funded or expired campaign")
	}
}

func timePtr(t time.Time) *time.Time { return &t }
