package response

import (
	"lounge-pos/internal/pkg/errs"
	"lounge-pos/internal/pkg/money"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Amounts leave the API as fixed two-place strings.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return money.Display(src.(decimal.Decimal)), nil
			},
		},
	},
}

func copyView(dst, src any) error {
	if err := copier.CopyWithOption(dst, src, copyOption); err != nil {
		return errs.Wrapf(err, "copy %T", src)
	}
	return nil
}
