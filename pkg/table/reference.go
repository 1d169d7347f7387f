package table

// Reference returns the built-in dataset: seven capitals or regions with the
// model that performed best for power prediction and the model that
// performed best for efficiency prediction.
//
// A fresh copy is returned on every call.
func Reference() Dataset {
	return Dataset{
		Title:        "Country Preferences for Models",
		XLabel:       "Model",
		YLabel:       "Country",
		Legend:       "Model Preference\n(1 for Power, -1 for Efficiency)",
		PositiveName: "Power",
		NegativeName: "Efficiency",
		Records: []Record{
			{Entity: "Antarctica", Positive: "ANN", Negative: "LGBM"},
			{Entity: "Australia", Positive: "ANN", Negative: "CatBoost"},
			{Entity: "Beijing", Positive: "SVR", Negative: "CatBoost"},
			{Entity: "Berlin", Positive: "SVR", Negative: "CatBoost"},
			{Entity: "Brasilia", Positive: "XGB", Negative: "Bagging"},
			{Entity: "Pretoria", Positive: "SVR", Negative: "CatBoost"},
			{Entity: "Washington", Positive: "ANN", Negative: "CatBoost"},
		},
	}
}
