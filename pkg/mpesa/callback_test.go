package mpesa

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const successCallbackJSON = `{
	"Body": {
		"stkCallback": {
			"MerchantRequestID": "29115-34620561-1",
			"CheckoutRequestID": "ws_CO_191220191020363925",
			"ResultCode": 0,
			"ResultDesc": "The service request is processed successfully.",
			"CallbackMetadata": {
				"Item": [
					{"Name": "Amount", "Value": 1.00},
					{"Name": "MpesaReceiptNumber", "Value": "NLJ7RT61SV"},
					{"Name": "TransactionDate", "Value": 20191219102115},
					{"Name": "PhoneNumber", "Value": 254708374149}
				]
			}
		}
	}
}`

const failureCallbackJSON = `{
	"Body": {
		"stkCallback": {
			"MerchantRequestID": "29115-34620561-1",
			"CheckoutRequestID": "ws_CO_191220191020363925",
			"ResultCode": 1032,
			"ResultDesc": "Request cancelled by user."
		}
	}
}`

func TestCallbackFields_Success(t *testing.T) {
	var envelope CallbackEnvelope
	require.NoError(t, json.Unmarshal([]byte(successCallbackJSON), &envelope))

	cb := envelope.Body.StkCallback
	assert.True(t, cb.Succeeded())
	assert.Equal(t, "ws_CO_191220191020363925", cb.CheckoutRequestID)

	fields := cb.Fields()
	assert.Equal(t, "1", fields.Amount)
	assert.Equal(t, "NLJ7RT61SV", fields.MpesaReceiptNumber)
	assert.Equal(t, "20191219102115", fields.TransactionDate)
	assert.Equal(t, "254708374149", fields.PhoneNumber)
}

func TestCallbackFields_FailureOmitsMetadata(t *testing.T) {
	var envelope CallbackEnvelope
	require.NoError(t, json.Unmarshal([]byte(failureCallbackJSON), &envelope))

	cb := envelope.Body.StkCallback
	assert.False(t, cb.Succeeded())

	fields := cb.Fields()
	assert.Empty(t, fields.Amount)
	assert.Empty(t, fields.MpesaReceiptNumber)
	assert.Empty(t, fields.TransactionDate)
}

func TestCallbackFields_DecimalAmount(t *testing.T) {
	cb := StkCallback{
		CallbackMetadata: CallbackMetadata{
			Item: []MetadataItem{
				{Name: "Amount", Value: 1500.50},
			},
		},
	}

	assert.Equal(t, "1500.5", cb.Fields().Amount)
}

func TestCallbackFields_UnknownItemsIgnored(t *testing.T) {
	cb := StkCallback{
		CallbackMetadata: CallbackMetadata{
			Item: []MetadataItem{
				{Name: "Balance", Value: nil},
				{Name: "MpesaReceiptNumber", Value: "NLJ7RT61SV"},
			},
		},
	}

	fields := cb.Fields()
	assert.Equal(t, "NLJ7RT61SV", fields.MpesaReceiptNumber)
	assert.Empty(t, fields.Amount)
}
