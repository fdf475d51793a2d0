package domain

// BaseCurrencyCode is the reference currency every rate in a RateTable is expressed against.
const BaseCurrencyCode = "USD"

// CurrencyCodeLength is the length of an ISO 4217 alphabetic code.
const CurrencyCodeLength = 3
