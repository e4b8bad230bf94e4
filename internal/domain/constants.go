package domain

// Fixed chat identities. Only the bank user and the admin ever talk.
const (
	ChatAdmin = "Admin"
	ChatUser  = "User"
)

// TimeLayout is how every timestamp is rendered on the wire.
const TimeLayout = "2006-01-02 15:04:05"

// Display windows.
const (
	RecentNotificationsLimit = 10
	ChatMessagesLimit        = 50
)

// Seed amounts for the bank user created at first start.
const (
	SeedTabungan int64 = 1100000
	SeedDeposito int64 = 200350000
)

var SeedNotifications = []string{
	"Selamat datang di Deposit BRI! Akun Anda telah aktif.",
	"Promo bunga deposito 6% untuk nasabah baru. Berlaku hingga akhir bulan.",
	"Jangan lupa untuk menjaga keamanan PIN Anda.",
}

const SeedPopup = "Selamat datang di aplikasi mobile banking Deposit BRI! Nikmati kemudahan bertransaksi dengan aman."
