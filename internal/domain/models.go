package domain

// Transient, denormalized copies of backend-owned entities. Field names and
// JSON tags mirror the upstream REST payloads; the gateway never mutates
// tour fields outside the admin edit forms.

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

type PaymentStatus string

const (
	PaymentCreated PaymentStatus = "CREATED"
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
)

type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      Role   `json:"role"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Tour dates arrive as ISO strings (upstream serializes LocalDate without a
// zone), so they stay strings until a form needs them parsed.
type Tour struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Destination    string   `json:"destination"`
	Category       string   `json:"category,omitempty"`
	Price          float64  `json:"price"`
	Duration       int      `json:"duration"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
	AvailableSeats int      `json:"availableSeats"`
	TotalSeats     int      `json:"totalSeats"`
	ImageURL       string   `json:"imageUrl,omitempty"`
	ImageURL2      string   `json:"imageUrl2,omitempty"`
	ImageURL3      string   `json:"imageUrl3,omitempty"`
	Itinerary      []string `json:"itinerary,omitempty"`
	Inclusions     []string `json:"inclusions,omitempty"`
	Exclusions     []string `json:"exclusions,omitempty"`
}

type Passenger struct {
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender,omitempty"`
	IDProof   string `json:"idProof,omitempty"`
	IsPrimary bool   `json:"isPrimary,omitempty"`
}

// Booking is the server-confirmed record, with tour snapshot fields as the
// upstream BookingResponse carries them.
type Booking struct {
	BookingID       int64         `json:"bookingId"`
	UserID          int64         `json:"userId"`
	UserName        string        `json:"userName,omitempty"`
	UserEmail       string        `json:"userEmail,omitempty"`
	TourID          int64         `json:"tourId"`
	TourTitle       string        `json:"tourTitle"`
	TourDestination string        `json:"tourDestination,omitempty"`
	TourImageURL    string        `json:"tourImageUrl,omitempty"`
	TourStartDate   string        `json:"tourStartDate,omitempty"`
	NumberOfSeats   int           `json:"numberOfSeats"`
	TotalPrice      float64       `json:"totalPrice"`
	ContactEmail    string        `json:"contactEmail,omitempty"`
	ContactPhone    string        `json:"contactPhone,omitempty"`
	Status          BookingStatus `json:"status"`
	PaymentStatus   string        `json:"paymentStatus,omitempty"`
	BookingDate     string        `json:"bookingDate,omitempty"`
	Passengers      []Passenger   `json:"passengers,omitempty"`
}

type Payment struct {
	ID                int64         `json:"id"`
	BookingID         int64         `json:"bookingId"`
	RazorpayOrderID   string        `json:"razorpayOrderId"`
	RazorpayPaymentID string        `json:"razorpayPaymentId,omitempty"`
	RazorpaySignature string        `json:"razorpaySignature,omitempty"`
	Amount            float64       `json:"amount"`
	Currency          string        `json:"currency"`
	Status            PaymentStatus `json:"status"`
	CreatedAt         string        `json:"createdAt,omitempty"`
}

type Review struct {
	ID        int64  `json:"id"`
	TourID    int64  `json:"tourId"`
	UserID    int64  `json:"userId"`
	UserName  string `json:"userName,omitempty"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type RatingStats struct {
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
}

// WishlistEntry has set semantics per (user, tour) upstream.
type WishlistEntry struct {
	ID      int64  `json:"id,omitempty"`
	UserID  int64  `json:"userId"`
	TourID  int64  `json:"tourId"`
	Tour    *Tour  `json:"tour,omitempty"`
	AddedAt string `json:"addedAt,omitempty"`
}

type RevenueData struct {
	Date         string  `json:"date"`
	Revenue      float64 `json:"revenue"`
	BookingCount int     `json:"bookingCount"`
}

type DestinationStats struct {
	Destination  string  `json:"destination"`
	BookingCount int     `json:"bookingCount"`
	Revenue      float64 `json:"revenue"`
}

type TourRatingStats struct {
	TourID        int64   `json:"tourId"`
	TourTitle     string  `json:"tourTitle"`
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
	TotalBookings int     `json:"totalBookings"`
}

type UserGrowthData struct {
	Month      string `json:"month"`
	NewUsers   int    `json:"newUsers"`
	TotalUsers int    `json:"totalUsers"`
}

type PaymentStats struct {
	TotalTransactions  int     `json:"totalTransactions"`
	SuccessfulPayments int     `json:"successfulPayments"`
	FailedPayments     int     `json:"failedPayments"`
	SuccessRate        float64 `json:"successRate"`
	TotalRevenue       float64 `json:"totalRevenue"`
}

type MonthlyBookingData struct {
	Month    string `json:"month"`
	Bookings int    `json:"bookings"`
}

type BookingTrendsData struct {
	MonthlyData    []MonthlyBookingData `json:"monthlyData"`
	ConfirmedCount int                  `json:"confirmedCount"`
	PendingCount   int                  `json:"pendingCount"`
	CancelledCount int                  `json:"cancelledCount"`
}

type Analytics struct {
	RevenueData         []RevenueData      `json:"revenueData"`
	PopularDestinations []DestinationStats `json:"popularDestinations"`
	TopRatedTours       []TourRatingStats  `json:"topRatedTours"`
	UserGrowth          []UserGrowthData   `json:"userGrowth"`
	PaymentStats        PaymentStats       `json:"paymentStats"`
	BookingTrends       BookingTrendsData  `json:"bookingTrends"`
	TotalRevenue        float64            `json:"totalRevenue"`
	TotalBookings       int                `json:"totalBookings"`
	TotalUsers          int                `json:"totalUsers"`
	ActiveTours         int                `json:"activeTours"`
}
