package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"loyalty-storefront/shop-svc/internal/domain"

	"github.com/google/uuid"
)

type RewardService struct {
	repo      RewardRepository
	points    *PointsLedger
	publisher EventPublisher
	now       Clock
}

func NewRewardService(repo RewardRepository, points *PointsLedger, publisher EventPublisher, now Clock) *RewardService {
	if now == nil {
		now = time.Now
	}
	return &RewardService{
		repo:      repo,
		points:    points,
		publisher: publisher,
		now:       now,
	}
}

// ListActive returns redeemable rewards, cheapest first.
func (s *RewardService) ListActive(ctx context.Context) ([]domain.Reward, error) {
	return s.repo.ListRewards(ctx, true)
}

func (s *RewardService) Overview(ctx context.Context, principal domain.Principal) (*domain.RewardsOverview, error) {
	userID, err := requireUser(principal)
	if err != nil {
		return nil, err
	}
	rewards, err := s.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	balance, err := s.points.BalanceOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.RewardsOverview{Rewards: rewards, Balance: balance}, nil
}

// Redeem exchanges points for one unit of a reward. Reward and stock checks
// and the balance check all pass before anything is written.
func (s *RewardService) Redeem(ctx context.Context, principal domain.Principal, rewardID int64) (*domain.RedemptionRecord, error) {
	userID, err := requireUser(principal)
	if err != nil {
		return nil, err
	}

	var record *domain.RedemptionRecord
	err = s.repo.InTx(ctx, func(tx Tx) error {
		reward, err := tx.LockReward(ctx, rewardID)
		if err != nil {
			return err
		}
		if !reward.Active {
			return fmt.Errorf("%w: reward %d is not active", domain.ErrNotFound, rewardID)
		}
		if reward.Stock <= 0 {
			return fmt.Errorf("%w: %s", domain.ErrOutOfStock, reward.Name)
		}

		if err := s.points.Debit(ctx, tx, userID, reward.PointsRequired); err != nil {
			return err
		}
		if err := tx.SaveRewardStock(ctx, reward.ID, reward.Stock-1); err != nil {
			return err
		}

		record = &domain.RedemptionRecord{
			UserID:     userID,
			RewardID:   reward.ID,
			RewardName: reward.Name,
			PointsUsed: reward.PointsRequired,
			Code:       voucherCode(),
			RedeemedAt: s.now(),
		}
		return tx.InsertRedemption(ctx, record)
	})
	if err != nil {
		if !isBusinessError(err) {
			log.Printf("ERROR: redeem reward %d for user %d: %v", rewardID, userID, err)
		}
		return nil, err
	}

	log.Printf("[shop-svc] user %d redeemed %q for %d points", userID, record.RewardName, record.PointsUsed)
	publishEvent(ctx, s.publisher, domain.KafkaMessage{
		Type:       domain.EventRewardRedeemed,
		UserID:     &userID,
		RewardID:   record.RewardID,
		RewardName: record.RewardName,
		Points:     record.PointsUsed,
	}, s.now())
	return record, nil
}

func (s *RewardService) Redemptions(ctx context.Context, principal domain.Principal) ([]domain.RedemptionRecord, error) {
	userID, err := requireUser(principal)
	if err != nil {
		return nil, err
	}
	return s.repo.ListRedemptions(ctx, userID)
}

func (s *RewardService) ListAll(ctx context.Context, principal domain.Principal) ([]domain.Reward, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	return s.repo.ListRewards(ctx, false)
}

func (s *RewardService) Create(ctx context.Context, principal domain.Principal, reward *domain.Reward) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}
	if err := validateReward(reward); err != nil {
		return err
	}
	return s.repo.CreateReward(ctx, reward)
}

func (s *RewardService) Update(ctx context.Context, principal domain.Principal, reward *domain.Reward) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}
	if err := validateReward(reward); err != nil {
		return err
	}
	return s.repo.UpdateReward(ctx, reward)
}

func validateReward(reward *domain.Reward) error {
	reward.Name = strings.TrimSpace(reward.Name)
	switch {
	case reward.Name == "":
		return fmt.Errorf("%w: reward name is required", domain.ErrValidation)
	case reward.PointsRequired <= 0:
		return fmt.Errorf("%w: points_required must be positive", domain.ErrValidation)
	case reward.Stock < 0:
		return fmt.Errorf("%w: stock cannot be negative", domain.ErrValidation)
	}
	return nil
}

func voucherCode() string {
	return "RWD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

var _ RewardServiceInterface = (*RewardService)(nil)
