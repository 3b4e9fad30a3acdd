package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"hayyakom/internal/core/domain"
)

// Seed inserts demo crowdfunding data: a few companies with campaigns in
// various lifecycle states and some confirmed investments. For local
// development only; every insert is idempotent.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	categories := []domain.CampaignCategory{
		domain.CategoryTechnology,
		domain.CategoryFoodBeverage,
		domain.CategoryRetail,
		domain.CategoryHealthWellness,
		domain.CategoryArtsCulture,
	}

	for i := 1; i <= 5; i++ {
		ownerID := int64(100 + i)
		_, err := db.Exec(ctx, `INSERT INTO companies (id, owner_id, name, cr_number)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`,
			i, ownerID, fmt.Sprintf("Demo Company %d", i), fmt.Sprintf("CR-%05d", i))
		if err != nil {
			return err
		}

		// one open campaign and one still pending approval per company
		openDeadline := time.Now().AddDate(0, 1, 0)
		_, err = db.Exec(ctx, `INSERT INTO campaigns
    (id, company_id, name, description, goal, deadline, category, is_approved, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,now(),now()) ON CONFLICT DO NOTHING`,
			i*10, i, fmt.Sprintf("Demo Campaign %d", i),
			"A demo funding campaign.", int64(10000), openDeadline,
			categories[(i-1)%len(categories)], true, domain.CampaignInProcess)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `INSERT INTO campaigns
    (id, company_id, name, description, goal, deadline, category, is_approved, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,now(),now()) ON CONFLICT DO NOTHING`,
			i*10+1, i, fmt.Sprintf("Pending Campaign %d", i),
			"Awaiting admin approval.", int64(8000), openDeadline,
			domain.CategoryOther, false, domain.CampaignPendingApproval)
		if err != nil {
			return err
		}

		// a couple of pledged investments on the open campaign
		for j := 1; j <= 2; j++ {
			investorID := int64(200 + i*10 + j)
			_, err = db.Exec(ctx, `INSERT INTO investments
    (investor_id, campaign_id, amount, status, created_at)
VALUES ($1,$2,$3,$4,now()) ON CONFLICT DO NOTHING`,
				investorID, i*10, int64(2000+500*j), domain.InvestmentPledged)
			if err != nil {
				return err
			}
		}

		_, err = db.Exec(ctx, `INSERT INTO milestones (campaign_id, title, target_date, is_complete)
SELECT $1, $2, $3, false
WHERE NOT EXISTS (SELECT 1 FROM milestones WHERE campaign_id = $1)`,
			i*10, "Prototype ready", time.Now().AddDate(0, 0, 14))
		if err != nil {
			return err
		}
	}
	return nil
}
