package payment

import (
	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

// IGateway is the thin payment-gateway surface the subscription flow needs:
// create an order in minor currency units and check a payment signature.
type IGateway interface {
	CreateOrder(amountPaise int64) (map[string]interface{}, error)
	VerifyPaymentSignature(orderId, paymentId, signature string) bool
}

type razorpayGateway struct {
	client    *razorpay.Client
	keySecret string
}

func NewRazorpayGateway(keyId, keySecret string) IGateway {
	return &razorpayGateway{
		client:    razorpay.NewClient(keyId, keySecret),
		keySecret: keySecret,
	}
}

func (g *razorpayGateway) CreateOrder(amountPaise int64) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        "INR",
		"payment_capture": 1,
	}
	return g.client.Order.Create(data, nil)
}

func (g *razorpayGateway) VerifyPaymentSignature(orderId, paymentId, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   orderId,
		"razorpay_payment_id": paymentId,
	}
	return utils.VerifyPaymentSignature(params, signature, g.keySecret)
}
