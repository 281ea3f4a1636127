package utils

import (
	"github.com/Arjun-316/FurniMart/models"
	"gorm.io/gorm"
)

// GetOrCreateWallet retrieves or creates a wallet for a user inside the
// caller's transaction.
func GetOrCreateWallet(tx *gorm.DB, userID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := tx.Where("user_id = ?", userID).First(&wallet).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			wallet = models.Wallet{
				UserID:  userID,
				Balance: 0,
			}
			if err := tx.Create(&wallet).Error; err != nil {
				return nil, WrapError(err, "create wallet")
			}
		} else {
			return nil, WrapError(err, "fetch wallet")
		}
	}
	return &wallet, nil
}

// CreditWallet records a credit transaction and updates the balance.
// Runs inside the caller's transaction so a failed order update rolls the
// refund back with it.
func CreditWallet(tx *gorm.DB, walletID uint, amount float64, description string, orderID *uint, reference string) (*models.WalletTransaction, error) {
	transaction := models.WalletTransaction{
		WalletID:    walletID,
		Amount:      amount,
		Type:        models.TransactionTypeCredit,
		Description: description,
		OrderID:     orderID,
		Reference:   reference,
	}
	if err := tx.Create(&transaction).Error; err != nil {
		return nil, WrapError(err, "record credit")
	}

	if err := tx.Model(&models.Wallet{}).Where("id = ?", walletID).
		UpdateColumn("balance", gorm.Expr("balance + ?", amount)).Error; err != nil {
		return nil, WrapError(err, "update balance")
	}

	return &transaction, nil
}
