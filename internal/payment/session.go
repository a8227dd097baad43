package payment

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// SessionRequest is the checkout payload sent to the gateway. It is stored verbatim on
// the pending order, so the JSON names match the gateway's form fields.
type SessionRequest struct {
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Currency        string          `json:"currency"`
	TranID          string          `json:"tran_id"`
	SuccessURL      string          `json:"success_url"`
	FailURL         string          `json:"fail_url"`
	CancelURL       string          `json:"cancel_url"`
	IPNURL          string          `json:"ipn_url"`
	ShippingMethod  string          `json:"shipping_method"`
	ProductName     string          `json:"product_name"`
	ProductCategory string          `json:"product_category"`
	ProductProfile  string          `json:"product_profile"`
	CusName         string          `json:"cus_name"`
	CusEmail        string          `json:"cus_email"`
	CusAdd1         string          `json:"cus_add1"`
	CusAdd2         string          `json:"cus_add2"`
	CusCity         string          `json:"cus_city"`
	CusState        string          `json:"cus_state"`
	CusPostcode     string          `json:"cus_postcode"`
	CusCountry      string          `json:"cus_country"`
	CusPhone        string          `json:"cus_phone"`
	CusFax          string          `json:"cus_fax"`
	ShipName        string          `json:"ship_name"`
	ShipAdd1        string          `json:"ship_add1"`
	ShipAdd2        string          `json:"ship_add2"`
	ShipCity        string          `json:"ship_city"`
	ShipState       string          `json:"ship_state"`
	ShipPostcode    string          `json:"ship_postcode"`
	ShipCountry     string          `json:"ship_country"`
	NumOfItem       int             `json:"num_of_item"`
	OrderTime       string          `json:"order_time"`
	OrderDate       string          `json:"order_date"`
}

// Form flattens the request into the gateway's form fields. Empty optional fields are
// left out.
func (r SessionRequest) Form() map[string]string {
	form := map[string]string{
		"total_amount":     r.TotalAmount.StringFixed(2),
		"currency":         r.Currency,
		"tran_id":          r.TranID,
		"success_url":      r.SuccessURL,
		"fail_url":         r.FailURL,
		"cancel_url":       r.CancelURL,
		"ipn_url":          r.IPNURL,
		"shipping_method":  r.ShippingMethod,
		"product_name":     r.ProductName,
		"product_category": r.ProductCategory,
		"product_profile":  r.ProductProfile,
		"cus_name":         r.CusName,
		"cus_email":        r.CusEmail,
		"cus_add1":         r.CusAdd1,
		"cus_city":         r.CusCity,
		"cus_country":      r.CusCountry,
		"cus_phone":        r.CusPhone,
		"num_of_item":      strconv.Itoa(r.NumOfItem),
	}

	optional := map[string]string{
		"cus_add2":      r.CusAdd2,
		"cus_state":     r.CusState,
		"cus_postcode":  r.CusPostcode,
		"cus_fax":       r.CusFax,
		"ship_name":     r.ShipName,
		"ship_add1":     r.ShipAdd1,
		"ship_add2":     r.ShipAdd2,
		"ship_city":     r.ShipCity,
		"ship_state":    r.ShipState,
		"ship_postcode": r.ShipPostcode,
		"ship_country":  r.ShipCountry,
		"value_a":       r.OrderTime,
		"value_b":       r.OrderDate,
	}
	for k, v := range optional {
		if v != "" {
			form[k] = v
		}
	}
	return form
}

type Session struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	SessionKey     string `json:"sessionkey"`
	GatewayPageURL string `json:"GatewayPageURL"`
}
