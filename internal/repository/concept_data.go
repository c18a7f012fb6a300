package repository

import "concept_tutor_backend/internal/model"

// 静态概念表与课程表 —— 全局只读数据，进程启动时装载一次
// 切片顺序即表的插入顺序，主题解析的兜底策略依赖该顺序

var conceptTable = []model.ConceptNode{
	{
		ID:    "entity_concept",
		Title: "The Business Entity Concept",
		Type:  "principle",
		Description: "A business is treated as a separate entity from its owner(s). " +
			"Only transactions that affect the business are recorded in the " +
			"business accounts, keeping personal and business finances distinct.",
		Examples: []string{
			"A sole trader's personal car is not recorded as a business asset.",
			"The owner's home mortgage is excluded from the business balance sheet.",
		},
		DependsOn: []string{},
	},
	{
		ID:    "accounting_equation",
		Title: "The Accounting Equation",
		Type:  "principle",
		Description: "Assets = Capital + Liabilities. Every resource owned by the business " +
			"(asset) is financed either by the owner (capital) or by external " +
			"parties (liabilities). The equation must always balance.",
		Examples: []string{
			"A business owns $10,000 in assets funded by $6,000 capital and $4,000 bank loan.",
			"Buying inventory on credit increases assets and liabilities by equal amounts.",
		},
		DependsOn: []string{"entity_concept"},
	},
	{
		ID:    "dual_aspect",
		Title: "The Dual Aspect Concept",
		Type:  "principle",
		Description: "Every transaction has two equal and opposite effects on the accounting " +
			"equation. For every debit there is an equal credit, ensuring the " +
			"equation always remains in balance.",
		Examples: []string{
			"Purchasing equipment for cash: equipment (asset) increases, cash (asset) decreases.",
			"Taking a loan: cash (asset) increases, loan payable (liability) increases.",
		},
		DependsOn: []string{"accounting_equation"},
	},
	{
		ID:    "debit_credit",
		Title: "Debits and Credits",
		Type:  "mechanic",
		Description: "Debits record increases in assets and expenses, and decreases in " +
			"liabilities, capital, and income. Credits do the opposite. " +
			"Every transaction requires at least one debit and one matching credit.",
		Examples: []string{
			"Receiving cash from a customer: debit Cash, credit Revenue.",
			"Paying a supplier: debit Accounts Payable, credit Cash.",
		},
		DependsOn: []string{"dual_aspect"},
	},
	{
		ID:    "t_account",
		Title: "T-Accounts",
		Type:  "mechanic",
		Description: "A T-account is the visual representation of a ledger account, shaped " +
			"like the letter T. Debits are recorded on the left side and credits on " +
			"the right. The balance is the difference between the two sides.",
		Examples: []string{
			"A Cash T-account with $5,000 on the debit side and $2,000 on the credit side has a $3,000 debit balance.",
			"A Loan T-account accumulates credits as the liability grows.",
		},
		DependsOn: []string{"debit_credit"},
	},
	{
		ID:    "accrual",
		Title: "The Accrual Concept",
		Type:  "principle",
		Description: "Income and expenses are recorded when they are earned or incurred, " +
			"not when cash is received or paid. This gives a more accurate picture " +
			"of financial performance in a given period.",
		Examples: []string{
			"Revenue earned in December is recorded in December even if cash arrives in January.",
			"An electricity bill received in March covering February is an accrued expense in February.",
		},
		DependsOn: []string{"entity_concept"},
	},
	{
		ID:    "matching",
		Title: "The Matching Concept",
		Type:  "principle",
		Description: "Expenses should be matched to the revenue they helped generate and " +
			"recognised in the same accounting period. This ensures profit is not " +
			"overstated or understated in any one period.",
		Examples: []string{
			"Cost of goods sold is recognised in the same period as the sale, not when inventory was purchased.",
			"Commission paid to a salesperson is expensed in the period the related sale is made.",
		},
		DependsOn: []string{"accrual"},
	},
	{
		ID:    "going_concern",
		Title: "The Going Concern Concept",
		Type:  "principle",
		Description: "A business is assumed to continue operating indefinitely into the foreseeable " +
			"future. Assets are therefore valued at cost rather than break-up value, and " +
			"long-term liabilities are not treated as immediately due.",
		Examples: []string{
			"A machine worth $10,000 at cost is not written down to scrap value just because the market is slow.",
			"A 5-year loan is shown as long-term on the balance sheet, not reclassified as current.",
		},
		DependsOn: []string{"entity_concept"},
	},
	{
		ID:    "historical_cost",
		Title: "The Historical Cost Concept",
		Type:  "principle",
		Description: "Assets are recorded at their original purchase price (historical cost) and " +
			"not adjusted for subsequent changes in market value. This provides objectivity " +
			"and verifiability in financial records.",
		Examples: []string{
			"Land bought for $50,000 ten years ago is still carried at $50,000, even if its market value has doubled.",
			"Inventory is recorded at what it cost to acquire, not at its current selling price.",
		},
		DependsOn: []string{"entity_concept"},
	},
	{
		ID:    "prudence",
		Title: "The Prudence Concept",
		Type:  "principle",
		Description: "Revenues and profits should only be recognised when realised; losses and " +
			"liabilities should be recognised as soon as they are foreseeable. When in " +
			"doubt, choose the option that is less likely to overstate assets or income.",
		Examples: []string{
			"A doubtful debt is written off immediately even though the customer has not yet defaulted.",
			"Inventory is valued at the lower of cost or net realisable value.",
		},
		DependsOn: []string{"accrual"},
	},
	{
		ID:    "consistency",
		Title: "The Consistency Concept",
		Type:  "convention",
		Description: "The same accounting methods and policies should be applied from one period " +
			"to the next. Changes in method distort comparisons and must be disclosed " +
			"with the reason and effect of the change.",
		Examples: []string{
			"If straight-line depreciation is used in year 1, it should be used in year 2 and beyond.",
			"Switching inventory valuation from FIFO to weighted average requires disclosure and justification.",
		},
		DependsOn: []string{"entity_concept"},
	},
	{
		ID:    "materiality",
		Title: "The Materiality Concept",
		Type:  "convention",
		Description: "Only items that are significant enough to influence the decisions of a user " +
			"of the financial statements need to be separately disclosed. Immaterial items " +
			"may be aggregated or expensed immediately for convenience.",
		Examples: []string{
			"A $5 stapler is expensed immediately rather than capitalised as a fixed asset.",
			"A $2 million contingent liability must be disclosed; a $20 one need not be.",
		},
		DependsOn: []string{"entity_concept"},
	},
	{
		ID:    "trial_balance",
		Title: "The Trial Balance",
		Type:  "mechanic",
		Description: "A trial balance is a list of all ledger account balances at a point in time. " +
			"Total debits must equal total credits. It is used to check for arithmetic errors " +
			"before preparing the final financial statements.",
		Examples: []string{
			"All debit balances (assets, expenses) and credit balances (liabilities, income, capital) are listed and summed.",
			"If totals do not agree, a transposition or omission error has occurred.",
		},
		DependsOn: []string{"t_account"},
	},
	{
		ID:    "depreciation",
		Title: "Depreciation",
		Type:  "mechanic",
		Description: "Depreciation spreads the cost of a fixed asset over its expected useful life. " +
			"It applies the matching concept by charging a portion of the asset's cost as " +
			"an expense in each period it contributes to revenue generation.",
		Examples: []string{
			"A vehicle costing $20,000 with a 5-year life and zero residual value is depreciated at $4,000 per year (straight-line).",
			"Reducing balance: 20% on a $10,000 machine gives $2,000 in year 1, $1,600 in year 2.",
		},
		DependsOn: []string{"historical_cost", "matching"},
	},

	// 神经网络与机器学习概念

	{
		ID:    "linear_model",
		Title: "Linear Models",
		Type:  "model",
		Description: "A linear model predicts outputs as a weighted sum of input features. " +
			"It assumes a linear relationship between input variables and output.",
		Examples: []string{
			"Linear regression predicting house prices.",
			"Binary classification using a linear decision boundary.",
		},
		DependsOn: []string{},
	},
	{
		ID:    "perceptron",
		Title: "The Perceptron",
		Type:  "model",
		Description: "A perceptron is a single-layer binary classifier that computes a weighted " +
			"sum of inputs followed by a step activation function. It can only classify " +
			"linearly separable data.",
		Examples: []string{
			"Spam vs not spam classification.",
			"Separating two classes using a straight line.",
		},
		DependsOn: []string{"linear_model"},
	},
	{
		ID:    "activation_function",
		Title: "Activation Functions",
		Type:  "mechanic",
		Description: "Activation functions introduce non-linearity into neural networks. " +
			"Without them, multiple layers collapse into a single linear transformation.",
		Examples: []string{
			"ReLU outputs max(0, x).",
			"Sigmoid squashes values between 0 and 1.",
			"Tanh outputs values between -1 and 1.",
		},
		DependsOn: []string{"perceptron"},
	},
	{
		ID:    "neuron",
		Title: "Artificial Neuron",
		Type:  "mechanic",
		Description: "An artificial neuron computes a weighted sum of inputs, adds a bias, " +
			"and applies an activation function.",
		Examples: []string{
			"y = ReLU(w1x1 + w2x2 + b).",
		},
		DependsOn: []string{"activation_function"},
	},
	{
		ID:    "neural_network",
		Title: "Neural Networks",
		Type:  "model",
		Description: "A neural network consists of layers of interconnected neurons. " +
			"Each layer transforms inputs through weighted connections and activation functions.",
		Examples: []string{
			"A feedforward network for digit classification.",
			"A regression network predicting stock prices.",
		},
		DependsOn: []string{"neuron"},
	},
	{
		ID:    "feedforward_network",
		Title: "Feedforward Neural Network",
		Type:  "model",
		Description: "A feedforward neural network passes information in one direction " +
			"from input to output without cycles.",
		Examples: []string{
			"A 3-layer network used for image classification.",
		},
		DependsOn: []string{"neural_network"},
	},
	{
		ID:    "loss_function",
		Title: "Loss Function",
		Type:  "mechanic",
		Description: "A loss function measures how far a model's predictions are from the true values. " +
			"Training aims to minimize this loss.",
		Examples: []string{
			"Mean Squared Error for regression.",
			"Cross-Entropy Loss for classification.",
		},
		DependsOn: []string{"neural_network"},
	},
	{
		ID:    "gradient",
		Title: "Gradient",
		Type:  "mathematical_concept",
		Description: "The gradient is the vector of partial derivatives of a function. " +
			"It points in the direction of steepest increase.",
		Examples: []string{
			"Derivative of loss with respect to weights.",
		},
		DependsOn: []string{},
	},
	{
		ID:    "gradient_descent",
		Title: "Gradient Descent",
		Type:  "optimization",
		Description: "Gradient descent is an optimization algorithm that updates model parameters " +
			"in the direction opposite to the gradient to minimize loss.",
		Examples: []string{
			"w = w - learning_rate * gradient.",
		},
		DependsOn: []string{"loss_function", "gradient"},
	},
	{
		ID:    "backpropagation",
		Title: "Backpropagation",
		Type:  "mechanic",
		Description: "Backpropagation computes gradients efficiently using the chain rule, " +
			"allowing multi-layer neural networks to be trained.",
		Examples: []string{
			"Computing hidden layer gradients using output error.",
		},
		DependsOn: []string{"gradient_descent", "neural_network"},
	},
	{
		ID:    "learning_rate",
		Title: "Learning Rate",
		Type:  "hyperparameter",
		Description: "The learning rate controls the step size taken during gradient descent updates.",
		Examples: []string{
			"A high learning rate may cause divergence.",
			"A very low learning rate slows convergence.",
		},
		DependsOn: []string{"gradient_descent"},
	},
	{
		ID:    "overfitting",
		Title: "Overfitting",
		Type:  "concept",
		Description: "Overfitting occurs when a model memorizes training data instead of learning " +
			"general patterns, leading to poor generalization.",
		Examples: []string{
			"High training accuracy, low validation accuracy.",
		},
		DependsOn: []string{"neural_network"},
	},
	{
		ID:          "underfitting",
		Title:       "Underfitting",
		Type:        "concept",
		Description: "Underfitting occurs when a model is too simple to capture patterns in data.",
		Examples: []string{
			"Linear model applied to complex nonlinear data.",
		},
		DependsOn: []string{"neural_network"},
	},
	{
		ID:          "regularization",
		Title:       "Regularization",
		Type:        "mechanic",
		Description: "Regularization techniques reduce overfitting by penalizing model complexity.",
		Examples: []string{
			"L2 regularization.",
			"Dropout in neural networks.",
		},
		DependsOn: []string{"overfitting"},
	},
	{
		ID:    "dropout",
		Title: "Dropout",
		Type:  "mechanic",
		Description: "Dropout randomly disables neurons during training to prevent co-adaptation " +
			"and reduce overfitting.",
		Examples: []string{
			"Applying 0.5 dropout during training.",
		},
		DependsOn: []string{"regularization"},
	},
	{
		ID:    "batch_normalization",
		Title: "Batch Normalization",
		Type:  "mechanic",
		Description: "Batch normalization normalizes activations within a layer to stabilize " +
			"and accelerate training.",
		Examples: []string{
			"Normalizing layer outputs before activation.",
		},
		DependsOn: []string{"neural_network"},
	},
	{
		ID:    "convolutional_neural_network",
		Title: "Convolutional Neural Network",
		Type:  "model",
		Description: "A CNN is a neural network architecture specialized for grid-like data " +
			"such as images, using convolutional layers to extract spatial features.",
		Examples: []string{
			"Image classification with convolution layers.",
		},
		DependsOn: []string{"neural_network"},
	},
	{
		ID:    "recurrent_neural_network",
		Title: "Recurrent Neural Network",
		Type:  "model",
		Description: "An RNN processes sequential data by maintaining a hidden state " +
			"that captures previous information.",
		Examples: []string{
			"Language modeling using sequence data.",
		},
		DependsOn: []string{"neural_network"},
	},
}

var topicTable = []model.Topic{
	{
		Name: "accounts_unit_2",
		Concepts: []string{
			"entity_concept",
			"accounting_equation",
			"accrual",
			"matching",
		},
	},
	{
		Name: "double_aspect",
		Concepts: []string{
			"entity_concept",
			"accounting_equation",
			"dual_aspect",
			"debit_credit",
			"t_account",
		},
	},
	// 八大会计基本原则，按依赖顺序排列
	{
		Name: "accounting_principles",
		Concepts: []string{
			"entity_concept",
			"going_concern",
			"historical_cost",
			"consistency",
			"materiality",
			"accrual",
			"matching",
			"prudence",
		},
	},
	// 从主体概念到试算平衡表
	{
		Name: "ledger_accounts",
		Concepts: []string{
			"entity_concept",
			"accounting_equation",
			"dual_aspect",
			"debit_credit",
			"t_account",
			"trial_balance",
		},
	},
	// 固定资产成本：建立在历史成本与配比原则之上
	{
		Name: "depreciation_unit",
		Concepts: []string{
			"entity_concept",
			"historical_cost",
			"accrual",
			"matching",
			"depreciation",
		},
	},
	// 神经网络与机器学习课程
	{
		Name: "ml_foundations",
		Concepts: []string{
			"linear_model",
			"gradient",
		},
	},
	{
		Name: "perceptron_unit",
		Concepts: []string{
			"linear_model",
			"perceptron",
			"activation_function",
		},
	},
	{
		Name: "neural_network_basics",
		Concepts: []string{
			"perceptron",
			"activation_function",
			"neuron",
			"neural_network",
			"feedforward_network",
		},
	},
	{
		Name: "training_neural_networks",
		Concepts: []string{
			"loss_function",
			"gradient",
			"gradient_descent",
			"learning_rate",
			"backpropagation",
		},
	},
	{
		Name: "model_generalization",
		Concepts: []string{
			"neural_network",
			"overfitting",
			"underfitting",
			"regularization",
			"dropout",
		},
	},
	{
		Name: "advanced_architectures",
		Concepts: []string{
			"convolutional_neural_network",
			"recurrent_neural_network",
			"batch_normalization",
		},
	},
	{
		Name: "deep_learning_complete_path",
		Concepts: []string{
			"linear_model",
			"perceptron",
			"activation_function",
			"neuron",
			"neural_network",
			"loss_function",
			"gradient",
			"gradient_descent",
			"backpropagation",
			"learning_rate",
			"overfitting",
			"regularization",
			"dropout",
			"batch_normalization",
			"convolutional_neural_network",
			"recurrent_neural_network",
		},
	},
}
