package response

// 对外响应文案，保持与既有客户端约定一致
const (
	MsgUnauthorized  = "Unauthorized. Authentication required."
	MsgServerError   = "A server error occurred while processing your request."
	MsgMissingID     = "Missing id parameter."
	MsgMissingPostID = "Missing post_id parameter."

	// 文章模块
	MsgPostCreated         = "Post was created."
	MsgPostUpdated         = "Post was updated."
	MsgPostDeleted         = "Post was deleted."
	MsgPostNotFound        = "Post does not exist."
	MsgPostCreateFailed    = "Unable to create post."
	MsgPostUpdateFailed    = "Unable to update post."
	MsgPostDeleteFailed    = "Unable to delete post."
	MsgPostDataIncomplete  = "Unable to create post. Data is incomplete."
	MsgPostUpdateNoID      = "Unable to update post. No ID provided."
	MsgPostDeleteNoID      = "Unable to delete post. No ID provided."
	MsgPostsRetrieveFailed = "Unable to retrieve posts."

	// 分类模块
	MsgCategoryCreated        = "Category was created."
	MsgCategoryCreateFailed   = "Unable to create category."
	MsgCategoryDataIncomplete = "Unable to create category. Data is incomplete."

	// 评论模块
	MsgCommentCreated       = "Comment was created."
	MsgCommentCreateFailed  = "Unable to create comment."
	MsgCommentIncomplete    = "Unable to create comment. Required fields are missing."
	MsgCommentInvalidParent = "Unable to create comment. Parent comment does not exist on this post."
	MsgCommentNotFound      = "Comment not found."
	MsgCommentApproved      = "Comment approved."
	MsgCommentApproveFailed = "Unable to approve comment."
	MsgCommentDeleted       = "Comment deleted."
	MsgCommentDeleteFailed  = "Unable to delete comment."
	MsgCommentInvalidAction = "Invalid action. Use 'approve' or 'delete'."
	MsgModerateIncomplete   = "Unable to process request. Required fields are missing."

	// 用户模块
	MsgUserCreated             = "User was created."
	MsgUserCreateFailed        = "Unable to create user."
	MsgUserDataIncomplete      = "Unable to create user. Data is incomplete."
	MsgUsernameExists          = "Username already exists."
	MsgEmailExists             = "Email already exists."
	MsgLoginSuccess            = "Login successful."
	MsgLoginFailed             = "Login failed. Invalid username or password."
	MsgLoginDataIncomplete     = "Unable to login. Data is incomplete."
	MsgProfileCreateFailed     = "Unable to create user profile."
	MsgProfileUpdateFailed     = "Unable to update user profile."
	MsgProfileNotFound         = "User profile not found."
	MsgProfileDeleteFailed     = "Unable to delete user profile."
	MsgPreferencesFailed       = "Unable to update preferences."
	MsgPreferencesCreateFailed = "Unable to create user preferences."
	MsgNoData                  = "No data provided."
	MsgInvalidConfirmation     = "Invalid confirmation. Please type 'DELETE' to confirm account deletion."
	MsgAccountDeleted          = "Account deleted successfully."
	MsgAccountDeleteFailed     = "Unable to delete account."
)
